package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// MySQLStore implements Store on a MySQL table via gorm, for deployments
// without access to DynamoDB.
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore connects to MySQL and ensures the purchase_orders table
// exists.
func NewMySQLStore(cfg Config) (*MySQLStore, error) {
	db, err := connectMySQL(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&PurchaseOrder{}); err != nil {
		return nil, fmt.Errorf("failed to migrate purchase_orders: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// NewMySQLStoreWithDB wraps an existing gorm handle, used by tests.
func NewMySQLStoreWithDB(db *gorm.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Scan returns every tracked purchase order.
func (s *MySQLStore) Scan(ctx context.Context) ([]PurchaseOrder, error) {
	var orders []PurchaseOrder
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to scan purchase_orders: %w", err)
	}
	return orders, nil
}

// Put inserts or replaces the record keyed by po.Number.
func (s *MySQLStore) Put(ctx context.Context, po PurchaseOrder) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&po).Error
	if err != nil {
		return fmt.Errorf("failed to put order %s: %w", po.Number, err)
	}
	return nil
}

// Delete removes the record for the given order number.
func (s *MySQLStore) Delete(ctx context.Context, number string) error {
	err := s.db.WithContext(ctx).
		Where("purchase_order_number = ?", number).
		Delete(&PurchaseOrder{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", number, err)
	}
	return nil
}

// connectMySQL establishes the gorm connection with pool and timeout
// settings. Special characters in the password are URL encoded per the
// go-sql-driver DSN rules.
func connectMySQL(cfg Config) (*gorm.DB, error) {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	// Suppress GORM logging; the application logger reports store failures.
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
