package config

import (
	"reflect"
	"strings"

	"inventory-bridge/core/archive"
	"inventory-bridge/core/erp"
	"inventory-bridge/core/fsm"
	"inventory-bridge/core/logger"
	"inventory-bridge/core/notify"
	"inventory-bridge/core/secrets"
	"inventory-bridge/core/server"
	"inventory-bridge/core/store"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the trigger HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// ERP holds configuration for the ERP platform client.
	ERP erp.Config `mapstructure:"erp"`
	// FSM holds configuration for the field-service platform client.
	FSM fsm.Config `mapstructure:"fsm"`
	// Store holds configuration for the purchase-order snapshot store.
	Store store.Config `mapstructure:"store"`
	// Notify holds configuration for the outbound notification channel.
	Notify notify.Config `mapstructure:"notify"`
	// Secrets holds configuration for the credential provider.
	Secrets secrets.Config `mapstructure:"secrets"`
	// Archive holds configuration for the run-report archive.
	Archive archive.Config `mapstructure:"archive"`
	// Jobs holds per-job scheduling and tuning settings.
	Jobs JobsConfig `mapstructure:"jobs"`
}

// JobConfig holds scheduling settings shared by all sync jobs.
type JobConfig struct {
	// Enabled controls whether the scheduler runs this job.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// IntervalMinutes is the fixed trigger interval for scheduled runs.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"720"`
}

// CatalogJobConfig holds settings for the catalog match job.
type CatalogJobConfig struct {
	Enabled         bool `mapstructure:"enabled" default:"false"`
	IntervalMinutes int  `mapstructure:"interval_minutes" default:"720"`
	// DefaultFolder is the folder code used when a product carries no group.
	DefaultFolder string `mapstructure:"default_folder" default:"DEFAULTFOLDER"`
	// DefaultWarehouse is the field-service warehouse used when no ERP
	// warehouse association matches.
	DefaultWarehouse int `mapstructure:"default_warehouse" default:"18"`
}

// SalesOrderJobConfig holds settings for the webhook-driven sales order job.
type SalesOrderJobConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
	// CustomerCode is the ERP customer the generated sales orders bill to.
	CustomerCode string `mapstructure:"customer_code" default:""`
	// SalespersonGUID is the ERP salesperson attached to generated orders.
	SalespersonGUID string `mapstructure:"salesperson_guid" default:""`
}

// JobsConfig groups the per-job configurations.
type JobsConfig struct {
	Catalog    CatalogJobConfig    `mapstructure:"catalog"`
	Stock      JobConfig           `mapstructure:"stock"`
	Orders     JobConfig           `mapstructure:"orders"`
	SalesOrder SalesOrderJobConfig `mapstructure:"salesorder"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
