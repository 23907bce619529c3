package inventory

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	inventoryrepo "github.com/muhammadheryan/medsupply/repository/inventory"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	"github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	GetInventory(ctx context.Context, instituteID uint64) ([]model.InventoryItem, error)
	ListLowStock(ctx context.Context, instituteID uint64) (*model.LowStockResponse, error)
}

type inventoryAppImpl struct {
	config        *config.Config
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
}

func NewInventoryApp(config *config.Config, inventoryRepo inventoryrepo.InventoryRepository, redisRepo redisrepo.Repository) InventoryApp {
	return &inventoryAppImpl{config: config, inventoryRepo: inventoryRepo, redisRepo: redisRepo}
}

// GetInventory serves the cached view and rebuilds it from the database on a
// miss. Writers delete the key after commit; the cache is never updated in place.
func (s *inventoryAppImpl) GetInventory(ctx context.Context, instituteID uint64) ([]model.InventoryItem, error) {
	key := constant.InventoryCacheKey(instituteID)

	cached, err := s.redisRepo.Get(ctx, key)
	if err == nil {
		var items []model.InventoryItem
		if jerr := json.Unmarshal([]byte(cached), &items); jerr == nil {
			return items, nil
		}
		logger.Warn("[GetInventory] discarding corrupt cache entry", zap.String("key", key))
	} else if !stderrors.Is(err, redisrepo.ErrCacheMiss) {
		logger.Warn("[GetInventory] cache read", zap.String("key", key), zap.String("error", err.Error()))
	}

	lines, err := s.inventoryRepo.ListInstituteInventory(ctx, instituteID)
	if err != nil {
		logger.Error("[GetInventory] list inventory", zap.Uint64("institute_id", instituteID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.InventoryItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.InventoryItem{
			MedicineID: l.MedicineID,
			Name:       l.MedicineName,
			Quantity:   l.Quantity,
			Threshold:  l.Threshold,
		})
	}

	if b, err := json.Marshal(items); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(b), s.config.Cache.InventoryTTL); err != nil {
			logger.Warn("[GetInventory] cache write", zap.String("key", key), zap.String("error", err.Error()))
		}
	}
	return items, nil
}

// ListLowStock reports lines strictly below their threshold plus the
// institute's total quantity on hand.
func (s *inventoryAppImpl) ListLowStock(ctx context.Context, instituteID uint64) (*model.LowStockResponse, error) {
	items, err := s.GetInventory(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	resp := &model.LowStockResponse{InstituteID: instituteID, Items: make([]model.LowStockItem, 0)}
	for _, it := range items {
		resp.TotalQuantity += it.Quantity
		if it.Quantity < it.Threshold {
			resp.Items = append(resp.Items, model.LowStockItem(it))
		}
	}
	return resp, nil
}
