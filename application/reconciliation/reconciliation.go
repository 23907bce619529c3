package reconciliation

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	inventoryrepo "github.com/muhammadheryan/medsupply/repository/inventory"
	orderrepo "github.com/muhammadheryan/medsupply/repository/order"
	"github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

// ReconciliationApp moves an order's quantity from manufacturer stock into the
// institute inventory. It runs inside the caller's transaction, which must
// already hold the order row lock.
type ReconciliationApp interface {
	ReconcileTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (*model.ReconcileResult, error)
}

type reconciliationAppImpl struct {
	orderRepo     orderrepo.OrderRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewReconciliationApp(orderRepo orderrepo.OrderRepository, inventoryRepo inventoryrepo.InventoryRepository) ReconciliationApp {
	return &reconciliationAppImpl{orderRepo: orderRepo, inventoryRepo: inventoryRepo}
}

func (s *reconciliationAppImpl) ReconcileTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (*model.ReconcileResult, error) {
	if order.ManufacturerStatus != constant.OrderStatusDelivered || order.InstituteStatus != constant.OrderStatusDelivered {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidTransition, "order is not delivered on both sides")
	}

	result := &model.ReconcileResult{
		OrderID:     order.ID,
		InstituteID: order.InstituteID,
		MedicineID:  order.MedicineID,
		Requested:   order.QuantityRequested,
	}
	if order.Reconciled {
		result.Applied = order.ReconciledQuantity
		result.Skipped = true
		return result, nil
	}

	// lock order: order row (held by caller), medicine stock, inventory line
	stock, err := s.inventoryRepo.GetManufacturerStockForUpdateTx(ctx, tx, order.MedicineID)
	if err != nil {
		logger.Error("[ReconcileTx] get manufacturer stock", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stock == nil {
		logger.Error("[ReconcileTx] medicine missing", zap.Uint64("order_id", order.ID), zap.Uint64("medicine_id", order.MedicineID))
		return nil, errors.SetCustomError(constant.ErrInvalidReference)
	}

	applied := order.QuantityRequested
	if stock.Quantity < applied {
		applied = stock.Quantity
		logger.Warn("[ReconcileTx] insufficient manufacturer stock, crediting available quantity",
			zap.Uint64("order_id", order.ID), zap.Int64("requested", order.QuantityRequested), zap.Int64("available", stock.Quantity))
	}

	won, err := s.orderRepo.MarkReconciledTx(ctx, tx, order.ID, applied)
	if err != nil {
		logger.Error("[ReconcileTx] mark reconciled", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !won {
		conflict := errors.SetCustomError(constant.ErrReconciliationConflict)
		logger.Warn("[ReconcileTx] "+conflict.Error(), zap.Uint64("order_id", order.ID))
		result.Skipped = true
		return result, nil
	}

	result.Applied = applied
	result.ManufacturerStockBefore = stock.Quantity
	result.ManufacturerStockAfter = stock.Quantity - applied
	if err := s.inventoryRepo.UpdateManufacturerStockTx(ctx, tx, order.MedicineID, result.ManufacturerStockAfter); err != nil {
		logger.Error("[ReconcileTx] update manufacturer stock", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.EnsureInstituteInventoryTx(ctx, tx, order.InstituteID, order.MedicineID); err != nil {
		logger.Error("[ReconcileTx] ensure inventory line", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	line, err := s.inventoryRepo.GetInstituteInventoryForUpdateTx(ctx, tx, order.InstituteID, order.MedicineID)
	if err != nil {
		logger.Error("[ReconcileTx] lock inventory line", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if line == nil {
		logger.Error("[ReconcileTx] inventory line missing after ensure", zap.Uint64("order_id", order.ID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result.InventoryBefore = line.Quantity
	result.InventoryAfter = line.Quantity + applied
	if err := s.inventoryRepo.UpdateInstituteInventoryTx(ctx, tx, line.ID, result.InventoryAfter); err != nil {
		logger.Error("[ReconcileTx] update inventory line", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	order.Reconciled = true
	order.ReconciledQuantity = applied

	logger.Info("[ReconcileTx] order reconciled",
		zap.Uint64("order_id", order.ID), zap.Int64("applied", applied), zap.Int64("inventory_after", result.InventoryAfter))
	return result, nil
}
