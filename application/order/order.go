package order

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/medsupply/application/reconciliation"
	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	masterrepo "github.com/muhammadheryan/medsupply/repository/master"
	orderrepo "github.com/muhammadheryan/medsupply/repository/order"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	txrepo "github.com/muhammadheryan/medsupply/repository/tx"
	"github.com/muhammadheryan/medsupply/thirdparty/rabbitmq"
	"github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	ManufacturerAccept(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error)
	ManufacturerReject(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error)
	ManufacturerMarkDelivered(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error)
	InstituteMarkDelivered(ctx context.Context, req *model.InstituteDeliverRequest) (*model.OrderSnapshot, error)
	ListOrdersForInstitute(ctx context.Context, instituteID uint64) ([]model.OrderSnapshot, error)
	ListOrdersForManufacturer(ctx context.Context, manufacturerID uint64) ([]model.OrderSnapshot, error)
	// GetOrder returns the order when actor is a party to it. A nil actor is
	// the internal caller and sees every order.
	GetOrder(ctx context.Context, actor *model.Actor, orderID uint64) (*model.OrderSnapshot, error)
	ReconcileOrder(ctx context.Context, orderID uint64) (*model.ReconcileResult, error)
}

type orderAppImpl struct {
	config            *config.Config
	txRepo            txrepo.TxRepository
	orderRepo         orderrepo.OrderRepository
	masterRepo        masterrepo.MasterRepository
	reconciliationApp reconciliation.ReconciliationApp
	redisRepo         redisrepo.Repository
	publisher         rabbitmq.EventPublisher
	now               func() time.Time
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, masterRepo masterrepo.MasterRepository,
	reconciliationApp reconciliation.ReconciliationApp, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) OrderApp {
	return &orderAppImpl{
		config:            config,
		txRepo:            txRepo,
		orderRepo:         orderRepo,
		masterRepo:        masterRepo,
		reconciliationApp: reconciliationApp,
		redisRepo:         redisRepo,
		publisher:         publisher,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	institute, err := s.masterRepo.GetInstitute(ctx, req.InstituteID)
	if err != nil {
		logger.Error("[CreateOrder] get institute", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if institute == nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("institute %d not found", req.InstituteID))
	}

	manufacturer, err := s.masterRepo.GetManufacturer(ctx, req.ManufacturerID)
	if err != nil {
		logger.Error("[CreateOrder] get manufacturer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if manufacturer == nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("manufacturer %d not found", req.ManufacturerID))
	}

	medicine, err := s.masterRepo.GetMedicine(ctx, req.MedicineID)
	if err != nil {
		logger.Error("[CreateOrder] get medicine", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if medicine == nil || medicine.ManufacturerID != manufacturer.ID {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference,
			fmt.Sprintf("medicine %d not supplied by manufacturer %d", req.MedicineID, req.ManufacturerID))
	}

	orderDate := s.now()
	orderID, err := s.orderRepo.InsertOrder(ctx, &model.InsertOrderItem{
		InstituteID:        institute.ID,
		ManufacturerID:     manufacturer.ID,
		MedicineID:         medicine.ID,
		QuantityRequested:  req.Quantity,
		ManufacturerStatus: constant.OrderStatusPending,
		InstituteStatus:    constant.OrderStatusPending,
		OrderDate:          orderDate,
		Remarks:            constant.RemarksCreated,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishOrderEvent(ctx, "[CreateOrder]", constant.OrderStatusPending, &model.OrderSnapshot{
		ID:                 orderID,
		InstituteID:        institute.ID,
		ManufacturerID:     manufacturer.ID,
		MedicineID:         medicine.ID,
		ManufacturerStatus: constant.OrderStatusPending,
		InstituteStatus:    constant.OrderStatusPending,
	})

	return &model.CreateOrderResponse{
		OrderID:   orderID,
		OrderDate: orderDate,
	}, nil
}

func (s *orderAppImpl) ManufacturerAccept(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error) {
	return s.transition(ctx, "[ManufacturerAccept]", req.OrderID, manufacturerGuard(req.ManufacturerID), manufacturerAccept)
}

func (s *orderAppImpl) ManufacturerReject(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error) {
	return s.transition(ctx, "[ManufacturerReject]", req.OrderID, manufacturerGuard(req.ManufacturerID), manufacturerReject)
}

func (s *orderAppImpl) ManufacturerMarkDelivered(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error) {
	return s.transition(ctx, "[ManufacturerMarkDelivered]", req.OrderID, manufacturerGuard(req.ManufacturerID), manufacturerMarkDelivered)
}

func (s *orderAppImpl) InstituteMarkDelivered(ctx context.Context, req *model.InstituteDeliverRequest) (*model.OrderSnapshot, error) {
	guard := func(o *model.OrderEntity) error {
		if o.InstituteID != req.InstituteID {
			return errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("order %d not found", o.ID))
		}
		if o.ManufacturerID != req.ManufacturerID {
			return errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("order %d is not supplied by manufacturer %d", o.ID, req.ManufacturerID))
		}
		return nil
	}
	return s.transition(ctx, "[InstituteMarkDelivered]", req.OrderID, guard, instituteMarkDelivered)
}

func manufacturerGuard(manufacturerID uint64) func(o *model.OrderEntity) error {
	return func(o *model.OrderEntity) error {
		if o.ManufacturerID != manufacturerID {
			return errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("order %d not found", o.ID))
		}
		return nil
	}
}

// transition runs one state machine step as a read-modify-write on the locked
// order row. Reconciliation, when due, joins the same transaction.
func (s *orderAppImpl) transition(ctx context.Context, op string, orderID uint64,
	guard func(*model.OrderEntity) error,
	apply func(*model.OrderEntity, time.Time) (outcome, error)) (*model.OrderSnapshot, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(op+" begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error(op+" get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("order %d not found", orderID))
	}
	if err := guard(order); err != nil {
		return nil, err
	}

	out, err := apply(order, s.now())
	if err != nil {
		logger.Info(op+" rejected transition", zap.Uint64("order_id", orderID), zap.String("reason", err.Error()))
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order); err != nil {
		logger.Error(op+" update status", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var result *model.ReconcileResult
	if out.reconcile {
		result, err = s.reconciliationApp.ReconcileTx(ctx, tx, order)
		if err != nil {
			return nil, err
		}
	}

	snapshot, err := s.orderRepo.GetOrderSnapshotTx(ctx, tx, orderID)
	if err != nil {
		logger.Error(op+" get snapshot", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if snapshot == nil {
		logger.Error(op+" snapshot missing", zap.Uint64("order_id", orderID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(op+" commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if result != nil && !result.Skipped {
		s.invalidateInventory(ctx, op, order.InstituteID)
	}
	s.publishOrderEvent(ctx, op, out.status, snapshot)

	return snapshot, nil
}

func (s *orderAppImpl) ListOrdersForInstitute(ctx context.Context, instituteID uint64) ([]model.OrderSnapshot, error) {
	orders, err := s.orderRepo.ListByInstitute(ctx, instituteID)
	if err != nil {
		logger.Error("[ListOrdersForInstitute] list orders", zap.Uint64("institute_id", instituteID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) ListOrdersForManufacturer(ctx context.Context, manufacturerID uint64) ([]model.OrderSnapshot, error) {
	orders, err := s.orderRepo.ListByManufacturer(ctx, manufacturerID)
	if err != nil {
		logger.Error("[ListOrdersForManufacturer] list orders", zap.Uint64("manufacturer_id", manufacturerID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, actor *model.Actor, orderID uint64) (*model.OrderSnapshot, error) {
	snapshot, err := s.orderRepo.GetOrderSnapshot(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get snapshot", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if snapshot == nil || !visibleTo(actor, snapshot) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return snapshot, nil
}

func visibleTo(actor *model.Actor, o *model.OrderSnapshot) bool {
	if actor == nil {
		return true
	}
	switch actor.Role {
	case constant.RoleInstitute:
		return o.InstituteID == actor.ID
	case constant.RoleManufacturer:
		return o.ManufacturerID == actor.ID
	}
	return false
}

// ReconcileOrder re-runs reconciliation for an order delivered on both sides.
// An already reconciled order comes back with Skipped set.
func (s *orderAppImpl) ReconcileOrder(ctx context.Context, orderID uint64) (*model.ReconcileResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReconcileOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ReconcileOrder] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("order %d not found", orderID))
	}

	result, err := s.reconciliationApp.ReconcileTx(ctx, tx, order)
	if err != nil {
		return nil, err
	}
	if result.Skipped {
		return result, nil
	}

	order.Remarks = constant.RemarksCompleted
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order); err != nil {
		logger.Error("[ReconcileOrder] update remarks", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	snapshot, err := s.orderRepo.GetOrderSnapshotTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ReconcileOrder] get snapshot", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if snapshot == nil {
		logger.Error("[ReconcileOrder] snapshot missing", zap.Uint64("order_id", orderID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReconcileOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateInventory(ctx, "[ReconcileOrder]", order.InstituteID)
	s.publishOrderEvent(ctx, "[ReconcileOrder]", constant.OrderStatusDelivered, snapshot)

	return result, nil
}

func (s *orderAppImpl) invalidateInventory(ctx context.Context, op string, instituteID uint64) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.Delete(ctx, constant.InventoryCacheKey(instituteID)); err != nil {
		logger.Error(op+" invalidate inventory cache", zap.Uint64("institute_id", instituteID), zap.String("error", err.Error()))
	}
}

// publishOrderEvent never fails the caller; the order row is already committed.
func (s *orderAppImpl) publishOrderEvent(ctx context.Context, op string, status constant.OrderStatus, o *model.OrderSnapshot) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderEventMessage{
		OrderID:            o.ID,
		Status:             string(status),
		InstituteID:        o.InstituteID,
		ManufacturerID:     o.ManufacturerID,
		MedicineID:         o.MedicineID,
		ManufacturerStatus: string(o.ManufacturerStatus),
		InstituteStatus:    string(o.InstituteStatus),
		Reconciled:         o.Reconciled,
		OccurredAt:         s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		logger.Error(op+" publish order event", zap.Uint64("order_id", o.ID), zap.String("error", err.Error()))
	}
}
