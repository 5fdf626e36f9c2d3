package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"inventory-bridge/core/config"
	"inventory-bridge/core/erp"
	"inventory-bridge/core/fsm"
	"inventory-bridge/core/metrics"
	"inventory-bridge/core/reconcile"
	"inventory-bridge/core/sched"
)

// catalogSource is the slice of the inventory platform client this
// feature reads from.
type catalogSource interface {
	Products(ctx context.Context) []erp.Product
}

// catalogTarget is the slice of the field-service platform client this
// feature provisions into.
type catalogTarget interface {
	MaterialCodes(ctx context.Context) []string
	Folders(ctx context.Context) []fsm.Folder
	WarehouseIDs(ctx context.Context) ([]int, error)
	CreateFolder(ctx context.Context, payload fsm.FolderPayload) (int64, error)
	CreateMaterial(ctx context.Context, payload fsm.MaterialPayload) (int64, error)
}

// Service runs the catalog match.
type Service struct {
	source catalogSource
	target catalogTarget
	cfg    config.CatalogJobConfig
	logger *zap.Logger
	gate   sched.Gate
}

// NewService creates a new catalog service.
func NewService(source catalogSource, target catalogTarget, cfg config.CatalogJobConfig, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		target: target,
		cfg:    cfg,
		logger: logger,
	}
}

// Result summarises one run.
type Result struct {
	// Unmatched is the number of products missing on the field-service
	// platform before this run.
	Unmatched int `json:"unmatched"`
	// CreatedCode is the product code provisioned by this run, empty when
	// everything already matched.
	CreatedCode string `json:"created_code,omitempty"`
	// FolderID is the folder the material was filed under.
	FolderID int64 `json:"folder_id,omitempty"`
	// MaterialID is the id of the created material.
	MaterialID int64 `json:"material_id,omitempty"`
}

// Run compares the two catalogs and provisions the first missing product.
// At most one run executes at a time; a trigger landing mid-run fails
// with sched.ErrRunInFlight.
func (s *Service) Run(ctx context.Context) (Result, error) {
	var res Result
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.run(ctx)
		return err
	})
	return res, err
}

func (s *Service) run(ctx context.Context) (Result, error) {
	products, materialCodes := s.fetchBoth(ctx)

	productCodes := make([]string, 0, len(products))
	for _, p := range products {
		productCodes = append(productCodes, p.ProductCode)
	}

	unmatched := reconcile.UnmatchedCodes(productCodes, materialCodes)
	if len(unmatched) == 0 {
		s.logger.Info("Catalogs already match", zap.Int("products", len(products)))
		return Result{}, nil
	}
	s.logger.Info("Found unmatched products",
		zap.Int("unmatched", len(unmatched)),
		zap.String("next", unmatched[0]),
	)

	product, ok := findProduct(products, unmatched[0])
	if !ok {
		return Result{Unmatched: len(unmatched)}, fmt.Errorf("no product details for code %q", unmatched[0])
	}

	warehouseIDs, err := s.resolveWarehouses(ctx, product)
	if err != nil {
		return Result{Unmatched: len(unmatched)}, err
	}

	groupName := s.cfg.DefaultFolder
	if product.ProductGroup != nil && product.ProductGroup.GroupName != "" {
		groupName = product.ProductGroup.GroupName
	}

	folderID, err := s.ensureFolder(ctx, groupName, warehouseIDs)
	if err != nil {
		return Result{Unmatched: len(unmatched)}, err
	}

	payload := fsm.BuildMaterial(product.ProductDescription, product.ProductCode, product.AverageLandPrice, folderID, warehouseIDs)
	materialID, err := s.target.CreateMaterial(ctx, payload)
	if err != nil {
		return Result{Unmatched: len(unmatched)}, fmt.Errorf("creating material %q: %w", product.ProductCode, err)
	}
	metrics.RecordMaterialCreated("material")

	s.logger.Info("Provisioned material",
		zap.String("product_code", product.ProductCode),
		zap.Int64("folder_id", folderID),
		zap.Int64("material_id", materialID),
	)
	return Result{
		Unmatched:   len(unmatched),
		CreatedCode: product.ProductCode,
		FolderID:    folderID,
		MaterialID:  materialID,
	}, nil
}

// fetchBoth retrieves both catalogs in parallel.
func (s *Service) fetchBoth(ctx context.Context) ([]erp.Product, []string) {
	var products []erp.Product
	var materialCodes []string

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		products = s.source.Products(ctx)
	}()
	go func() {
		defer wg.Done()
		materialCodes = s.target.MaterialCodes(ctx)
	}()
	wg.Wait()

	return products, materialCodes
}

// resolveWarehouses maps the product's warehouse associations to
// field-service warehouse ids, falling back to the configured default when
// nothing matches.
func (s *Service) resolveWarehouses(ctx context.Context, product erp.Product) ([]int, error) {
	wanted := make(map[int]struct{})
	for _, detail := range product.InventoryDetails {
		id, err := strconv.Atoi(detail.Warehouse.WarehouseCode)
		if err != nil {
			continue
		}
		wanted[id] = struct{}{}
	}

	available, err := s.target.WarehouseIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing warehouses: %w", err)
	}

	var matched []int
	for _, id := range available {
		if _, ok := wanted[id]; ok {
			matched = append(matched, id)
		}
	}
	if len(matched) == 0 {
		s.logger.Info("No matching warehouses, using default",
			zap.String("product_code", product.ProductCode),
			zap.Int("default_warehouse", s.cfg.DefaultWarehouse),
		)
		matched = []int{s.cfg.DefaultWarehouse}
	}
	return matched, nil
}

// ensureFolder resolves the folder for a group name, creating it when it
// does not exist yet.
func (s *Service) ensureFolder(ctx context.Context, groupName string, warehouseIDs []int) (int64, error) {
	want := reconcile.NormalizeCode(groupName)
	for _, folder := range s.target.Folders(ctx) {
		if folder.Code == want {
			return folder.MaterialID, nil
		}
	}

	id, err := s.target.CreateFolder(ctx, fsm.BuildFolder(groupName, warehouseIDs))
	if err != nil {
		return 0, fmt.Errorf("creating folder %q: %w", groupName, err)
	}
	metrics.RecordMaterialCreated("folder")
	s.logger.Info("Created folder", zap.String("folder", groupName), zap.Int64("folder_id", id))
	return id, nil
}

func findProduct(products []erp.Product, code string) (erp.Product, bool) {
	want := reconcile.NormalizeCode(code)
	for _, p := range products {
		if reconcile.NormalizeCode(p.ProductCode) == want {
			return p, true
		}
	}
	return erp.Product{}, false
}
