package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/medsupply/application/order"
	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	reconciliationmocks "github.com/muhammadheryan/medsupply/mocks/application/reconciliation"
	mastermocks "github.com/muhammadheryan/medsupply/mocks/repository/master"
	ordermocks "github.com/muhammadheryan/medsupply/mocks/repository/order"
	redismocks "github.com/muhammadheryan/medsupply/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/medsupply/mocks/repository/tx"
	rabbitmqmocks "github.com/muhammadheryan/medsupply/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/medsupply/model"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	"github.com/muhammadheryan/medsupply/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo            *txmocks.TxRepository
	orderRepo         *ordermocks.OrderRepository
	masterRepo        *mastermocks.MasterRepository
	reconciliationApp *reconciliationmocks.ReconciliationApp
	redisRepo         *redismocks.RedisRepository
	publisher         *rabbitmqmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:            txmocks.NewTxRepository(t),
		orderRepo:         ordermocks.NewOrderRepository(t),
		masterRepo:        mastermocks.NewMasterRepository(t),
		reconciliationApp: reconciliationmocks.NewReconciliationApp(t),
	}
}

func (f fields) app() apporder.OrderApp {
	// untyped nils so the app sees a missing collaborator
	var redis redisrepo.Repository
	if f.redisRepo != nil {
		redis = f.redisRepo
	}
	var publisher rabbitmq.EventPublisher
	if f.publisher != nil {
		publisher = f.publisher
	}
	return apporder.NewOrderApp(&config.Config{}, f.txRepo, f.orderRepo, f.masterRepo, f.reconciliationApp, redis, publisher)
}

func assertErrCode(t *testing.T, err error, wantErr bool, code constant.ErrorType) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("expected error code %s, got %s", constant.ErrorTypeCode[code], ce.ErrorCode())
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		req           *model.CreateOrderRequest
		withPublisher bool
		mockCall      func(f fields)
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name:          "success: order created and event published",
			req:           &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 50},
			withPublisher: true,
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(&model.Institute{ID: 1}, nil).Once()
				f.masterRepo.On("GetManufacturer", mock.Anything, uint64(2)).Return(&model.Manufacturer{ID: 2}, nil).Once()
				f.masterRepo.On("GetMedicine", mock.Anything, uint64(3)).Return(&model.Medicine{ID: 3, ManufacturerID: 2}, nil).Once()
				f.orderRepo.On("InsertOrder", mock.Anything, mock.MatchedBy(func(req *model.InsertOrderItem) bool {
					return req.InstituteID == 1 && req.ManufacturerID == 2 && req.MedicineID == 3 &&
						req.QuantityRequested == 50 &&
						req.ManufacturerStatus == constant.OrderStatusPending &&
						req.InstituteStatus == constant.OrderStatusPending &&
						!req.OrderDate.IsZero()
				})).Return(uint64(9), nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(msg rabbitmq.OrderEventMessage) bool {
					return msg.OrderID == 9 && msg.Status == string(constant.OrderStatusPending)
				})).Return(nil).Once()
			},
		},
		{
			name:          "success: publish failure does not fail the order",
			req:           &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 1},
			withPublisher: true,
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(&model.Institute{ID: 1}, nil).Once()
				f.masterRepo.On("GetManufacturer", mock.Anything, uint64(2)).Return(&model.Manufacturer{ID: 2}, nil).Once()
				f.masterRepo.On("GetMedicine", mock.Anything, uint64(3)).Return(&model.Medicine{ID: 3, ManufacturerID: 2}, nil).Once()
				f.orderRepo.On("InsertOrder", mock.Anything, mock.Anything).Return(uint64(9), nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:    "error: zero quantity",
			req:     &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 0},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: negative quantity",
			req:     &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: -4},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: unknown institute",
			req:  &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: unknown manufacturer",
			req:  &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(&model.Institute{ID: 1}, nil).Once()
				f.masterRepo.On("GetManufacturer", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: medicine of another manufacturer",
			req:  &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(&model.Institute{ID: 1}, nil).Once()
				f.masterRepo.On("GetManufacturer", mock.Anything, uint64(2)).Return(&model.Manufacturer{ID: 2}, nil).Once()
				f.masterRepo.On("GetMedicine", mock.Anything, uint64(3)).Return(&model.Medicine{ID: 3, ManufacturerID: 8}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: insert fails",
			req:  &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.masterRepo.On("GetInstitute", mock.Anything, uint64(1)).Return(&model.Institute{ID: 1}, nil).Once()
				f.masterRepo.On("GetManufacturer", mock.Anything, uint64(2)).Return(&model.Manufacturer{ID: 2}, nil).Once()
				f.masterRepo.On("GetMedicine", mock.Anything, uint64(3)).Return(&model.Medicine{ID: 3, ManufacturerID: 2}, nil).Once()
				f.orderRepo.On("InsertOrder", mock.Anything, mock.Anything).Return(uint64(0), errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.withPublisher {
				f.publisher = rabbitmqmocks.NewEventPublisher(t)
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().CreateOrder(context.Background(), tt.req)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && (got == nil || got.OrderID != 9) {
				t.Fatalf("CreateOrder() = %+v, want order 9", got)
			}
		})
	}
}

func orderEntity(m, i constant.OrderStatus) *model.OrderEntity {
	return &model.OrderEntity{
		ID:                 5,
		InstituteID:        1,
		ManufacturerID:     2,
		MedicineID:         3,
		QuantityRequested:  50,
		ManufacturerStatus: m,
		InstituteStatus:    i,
	}
}

func TestOrderApp_ManufacturerTransitions(t *testing.T) {
	type call func(app apporder.OrderApp) (*model.OrderSnapshot, error)
	accept := func(app apporder.OrderApp) (*model.OrderSnapshot, error) {
		return app.ManufacturerAccept(context.Background(), &model.OrderActionRequest{ManufacturerID: 2, OrderID: 5})
	}
	reject := func(app apporder.OrderApp) (*model.OrderSnapshot, error) {
		return app.ManufacturerReject(context.Background(), &model.OrderActionRequest{ManufacturerID: 2, OrderID: 5})
	}
	deliver := func(app apporder.OrderApp) (*model.OrderSnapshot, error) {
		return app.ManufacturerMarkDelivered(context.Background(), &model.OrderActionRequest{ManufacturerID: 2, OrderID: 5})
	}

	tests := []struct {
		name      string
		call      call
		withCache bool
		mockCall  func(f fields, tx *sqlx.Tx)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: accept approves both sides",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusPending, constant.OrderStatusPending), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.ManufacturerStatus == constant.OrderStatusApproved && o.InstituteStatus == constant.OrderStatusApproved
				})).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: reject propagates to institute",
			call: reject,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusPending, constant.OrderStatusPending), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.ManufacturerStatus == constant.OrderStatusRejected && o.InstituteStatus == constant.OrderStatusRejected &&
						o.DeliveryDate != nil
				})).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:      "success: second delivery reconciles and invalidates cache",
			call:      deliver,
			withCache: true,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusDelivered), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.ManufacturerStatus == constant.OrderStatusDelivered && o.Remarks == constant.RemarksCompleted
				})).Return(nil).Once()
				f.reconciliationApp.On("ReconcileTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.ID == 5
				})).Return(&model.ReconcileResult{OrderID: 5, Applied: 50}, nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5, InstituteID: 1}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, constant.InventoryCacheKey(1)).Return(nil).Once()
			},
		},
		{
			name: "success: first delivery does not reconcile",
			call: deliver,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusApproved), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: reconciliation failure rolls back",
			call: deliver,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusDelivered), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.reconciliationApp.On("ReconcileTx", mock.Anything, tx, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInternal)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: snapshot read fails",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusPending, constant.OrderStatusPending), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(nil, errors.New("db down")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: snapshot missing",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusPending, constant.OrderStatusPending), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: accept on approved order",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusApproved), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: reject on rejected order",
			call: reject,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusRejected, constant.OrderStatusRejected), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: order of another manufacturer",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				o := orderEntity(constant.OrderStatusPending, constant.OrderStatusPending)
				o.ManufacturerID = 77
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).Return(o, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: order not found",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: begin tx fails",
			call: accept,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.withCache {
				f.redisRepo = redismocks.NewRedisRepository(t)
			}
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			got, err := tt.call(f.app())
			assertErrCode(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && (got == nil || got.ID != 5) {
				t.Fatalf("got snapshot %+v, want order 5", got)
			}
		})
	}
}

func TestOrderApp_InstituteMarkDelivered(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.InstituteDeliverRequest
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: stale approval is withdrawn without error",
			req:  &model.InstituteDeliverRequest{InstituteID: 1, OrderID: 5, ManufacturerID: 2},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusRejected, constant.OrderStatusApproved), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.InstituteStatus == constant.OrderStatusRejected && o.Remarks == constant.RemarksStaleApproval
				})).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: manufacturer reference does not match",
			req:  &model.InstituteDeliverRequest{InstituteID: 1, OrderID: 5, ManufacturerID: 99},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusApproved), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: order of another institute",
			req:  &model.InstituteDeliverRequest{InstituteID: 4, OrderID: 5, ManufacturerID: 2},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusApproved, constant.OrderStatusApproved), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: rejected order cannot be delivered",
			req:  &model.InstituteDeliverRequest{InstituteID: 1, OrderID: 5, ManufacturerID: 2},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusRejected, constant.OrderStatusRejected), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}
			_, err := f.app().InstituteMarkDelivered(context.Background(), tt.req)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	snapshot := &model.OrderSnapshot{ID: 5, InstituteID: 1, ManufacturerID: 2}
	tests := []struct {
		name     string
		actor    *model.Actor
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: institute party",
			actor: &model.Actor{ID: 1, Role: constant.RoleInstitute},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderSnapshot", mock.Anything, uint64(5)).Return(snapshot, nil).Once()
			},
		},
		{
			name:  "success: manufacturer party",
			actor: &model.Actor{ID: 2, Role: constant.RoleManufacturer},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderSnapshot", mock.Anything, uint64(5)).Return(snapshot, nil).Once()
			},
		},
		{
			name: "success: internal caller",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderSnapshot", mock.Anything, uint64(5)).Return(snapshot, nil).Once()
			},
		},
		{
			name:  "error: other institute",
			actor: &model.Actor{ID: 3, Role: constant.RoleInstitute},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderSnapshot", mock.Anything, uint64(5)).Return(snapshot, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: missing order",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderSnapshot", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			_, err := f.app().GetOrder(context.Background(), tt.actor, 5)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestOrderApp_ReconcileOrder(t *testing.T) {
	tests := []struct {
		name        string
		mockCall    func(f fields, tx *sqlx.Tx)
		wantSkipped bool
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: pending reconciliation applied",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusDelivered, constant.OrderStatusDelivered), nil).Once()
				f.reconciliationApp.On("ReconcileTx", mock.Anything, tx, mock.Anything).
					Return(&model.ReconcileResult{OrderID: 5, Applied: 50}, nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(o *model.OrderEntity) bool {
					return o.Remarks == constant.RemarksCompleted
				})).Return(nil).Once()
				f.orderRepo.On("GetOrderSnapshotTx", mock.Anything, tx, uint64(5)).Return(&model.OrderSnapshot{ID: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: already reconciled is a no-op",
			mockCall: func(f fields, tx *sqlx.Tx) {
				o := orderEntity(constant.OrderStatusDelivered, constant.OrderStatusDelivered)
				o.Reconciled = true
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).Return(o, nil).Once()
				f.reconciliationApp.On("ReconcileTx", mock.Anything, tx, o).
					Return(&model.ReconcileResult{OrderID: 5, Skipped: true}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantSkipped: true,
		},
		{
			name: "error: not delivered on both sides",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(orderEntity(constant.OrderStatusDelivered, constant.OrderStatusApproved), nil).Once()
				f.reconciliationApp.On("ReconcileTx", mock.Anything, tx, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidTransition)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			tt.mockCall(f, tx)
			got, err := f.app().ReconcileOrder(context.Background(), 5)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && got.Skipped != tt.wantSkipped {
				t.Fatalf("Skipped = %v, want %v", got.Skipped, tt.wantSkipped)
			}
		})
	}
}
