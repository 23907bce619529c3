package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/medsupply/constant"
	actormocks "github.com/muhammadheryan/medsupply/mocks/application/actor"
	catalogmocks "github.com/muhammadheryan/medsupply/mocks/application/catalog"
	inventorymocks "github.com/muhammadheryan/medsupply/mocks/application/inventory"
	ordermocks "github.com/muhammadheryan/medsupply/mocks/application/order"
	prescriptionmocks "github.com/muhammadheryan/medsupply/mocks/application/prescription"
	"github.com/muhammadheryan/medsupply/model"
	"github.com/muhammadheryan/medsupply/transport"
	cerr "github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	instituteToken    = "institute-token"
	manufacturerToken = "manufacturer-token"
	internalKey       = "internal-key"
)

type fields struct {
	actor        *actormocks.ActorApp
	order        *ordermocks.OrderApp
	prescription *prescriptionmocks.PrescriptionApp
	inventory    *inventorymocks.InventoryApp
	catalog      *catalogmocks.CatalogApp
}

func newFields(t *testing.T) fields {
	f := fields{
		actor:        actormocks.NewActorApp(t),
		order:        ordermocks.NewOrderApp(t),
		prescription: prescriptionmocks.NewPrescriptionApp(t),
		inventory:    inventorymocks.NewInventoryApp(t),
		catalog:      catalogmocks.NewCatalogApp(t),
	}
	f.actor.On("ValidateToken", mock.Anything, instituteToken).
		Return(&model.Actor{ID: 1, Role: constant.RoleInstitute}, nil).Maybe()
	f.actor.On("ValidateToken", mock.Anything, manufacturerToken).
		Return(&model.Actor{ID: 2, Role: constant.RoleManufacturer}, nil).Maybe()
	f.actor.On("ValidateToken", mock.Anything, mock.Anything).
		Return(nil, errors.New("invalid token")).Maybe()
	return f
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(transport.Apps{
		Actor:        f.actor,
		Order:        f.order,
		Prescription: f.prescription,
		Inventory:    f.inventory,
		Catalog:      f.catalog,
	}, internalKey)
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestTransport_Routes(t *testing.T) {
	orderDate := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	snapshot := &model.OrderSnapshot{ID: 9, InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 30,
		ManufacturerStatus: constant.OrderStatusApproved, InstituteStatus: constant.OrderStatusPending, OrderDate: orderDate}

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
		checkData  func(t *testing.T, data json.RawMessage)
	}{
		{
			name:       "health needs no token",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/v1/institute/orders",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:       "rejected token",
			method:     http.MethodGet,
			path:       "/v1/institute/orders",
			token:      "forged",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:       "manufacturer on an institute route",
			method:     http.MethodGet,
			path:       "/v1/institute/inventory",
			token:      manufacturerToken,
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:   "create order uses the caller as institute",
			method: http.MethodPost,
			path:   "/v1/institute/orders",
			token:  instituteToken,
			body:   `{"manufacturer_id":2,"medicine_id":3,"quantity":30}`,
			mockCall: func(f fields) {
				f.order.On("CreateOrder", mock.Anything, &model.CreateOrderRequest{InstituteID: 1, ManufacturerID: 2, MedicineID: 3, Quantity: 30}).
					Return(&model.CreateOrderResponse{OrderID: 9, OrderDate: orderDate}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
			checkData: func(t *testing.T, data json.RawMessage) {
				var got model.CreateOrderResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, uint64(9), got.OrderID)
			},
		},
		{
			name:   "create order with zero quantity reaches the app",
			method: http.MethodPost,
			path:   "/v1/institute/orders",
			token:  instituteToken,
			body:   `{"manufacturer_id":2,"medicine_id":3,"quantity":0}`,
			mockCall: func(f fields) {
				f.order.On("CreateOrder", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidQuantity)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidQuantity],
		},
		{
			name:       "create order with malformed body",
			method:     http.MethodPost,
			path:       "/v1/institute/orders",
			token:      instituteToken,
			body:       `{"manufacturer_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:       "create order without medicine",
			method:     http.MethodPost,
			path:       "/v1/institute/orders",
			token:      instituteToken,
			body:       `{"manufacturer_id":2,"quantity":5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "institute confirms delivery",
			method: http.MethodPut,
			path:   "/v1/institute/orders/9/deliver",
			token:  instituteToken,
			body:   `{"manufacturer_id":2}`,
			mockCall: func(f fields) {
				f.order.On("InstituteMarkDelivered", mock.Anything, &model.InstituteDeliverRequest{InstituteID: 1, OrderID: 9, ManufacturerID: 2}).
					Return(snapshot, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "non-numeric order id",
			method:     http.MethodPut,
			path:       "/v1/manufacturer/orders/abc/accept",
			token:      manufacturerToken,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "manufacturer accept on a delivered order",
			method: http.MethodPut,
			path:   "/v1/manufacturer/orders/9/accept",
			token:  manufacturerToken,
			mockCall: func(f fields) {
				f.order.On("ManufacturerAccept", mock.Anything, &model.OrderActionRequest{ManufacturerID: 2, OrderID: 9}).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidTransition)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidTransition],
		},
		{
			name:   "manufacturer reject",
			method: http.MethodPut,
			path:   "/v1/manufacturer/orders/9/reject",
			token:  manufacturerToken,
			mockCall: func(f fields) {
				f.order.On("ManufacturerReject", mock.Anything, &model.OrderActionRequest{ManufacturerID: 2, OrderID: 9}).
					Return(snapshot, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:   "manufacturer deliver",
			method: http.MethodPut,
			path:   "/v1/manufacturer/orders/9/deliver",
			token:  manufacturerToken,
			mockCall: func(f fields) {
				f.order.On("ManufacturerMarkDelivered", mock.Anything, &model.OrderActionRequest{ManufacturerID: 2, OrderID: 9}).
					Return(snapshot, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "dispense with a zero quantity line",
			method:     http.MethodPost,
			path:       "/v1/institute/prescriptions",
			token:      instituteToken,
			body:       `{"recipient":{"employee_id":4},"medicines":[{"medicine_id":3,"quantity":0}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidQuantity],
		},
		{
			name:       "dispense to a family member without id",
			method:     http.MethodPost,
			path:       "/v1/institute/prescriptions",
			token:      instituteToken,
			body:       `{"recipient":{"employee_id":4,"is_family_member":true},"medicines":[{"medicine_id":3,"quantity":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "dispense out of stock",
			method: http.MethodPost,
			path:   "/v1/institute/prescriptions",
			token:  instituteToken,
			body:   `{"recipient":{"employee_id":4},"medicines":[{"medicine_id":3,"quantity":2}],"notes":"fever"}`,
			mockCall: func(f fields) {
				f.prescription.On("DispensePrescription", mock.Anything, &model.DispenseRequest{
					InstituteID: 1,
					Recipient:   model.Recipient{EmployeeID: 4},
					Lines:       []model.DispenseLineRequest{{MedicineID: 3, Quantity: 2}},
					Notes:       "fever",
				}).Return(nil, cerr.SetCustomError(constant.ErrOutOfStock)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   constant.ErrorTypeCode[constant.ErrOutOfStock],
		},
		{
			name:   "low stock report",
			method: http.MethodGet,
			path:   "/v1/institute/inventory/low-stock",
			token:  instituteToken,
			mockCall: func(f fields) {
				f.inventory.On("ListLowStock", mock.Anything, uint64(1)).
					Return(&model.LowStockResponse{InstituteID: 1, TotalQuantity: 4, Items: []model.LowStockItem{{MedicineID: 3, Quantity: 4, Threshold: 10}}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
			checkData: func(t *testing.T, data json.RawMessage) {
				var got model.LowStockResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Len(t, got.Items, 1)
			},
		},
		{
			name:   "order snapshot for a party",
			method: http.MethodGet,
			path:   "/v1/orders/9",
			token:  manufacturerToken,
			mockCall: func(f fields) {
				f.order.On("GetOrder", mock.Anything, &model.Actor{ID: 2, Role: constant.RoleManufacturer}, uint64(9)).
					Return(snapshot, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:   "catalog paging from the query",
			method: http.MethodGet,
			path:   "/v1/manufacturers/2/catalog?page=2&per_page=5",
			token:  instituteToken,
			mockCall: func(f fields) {
				f.catalog.On("ListCatalog", mock.Anything, uint64(2), 2, 5).
					Return(&model.CatalogResponse{Items: []model.CatalogItem{}, Page: 2, PerPage: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "internal route with a user token",
			method:     http.MethodGet,
			path:       "/internal/v1/orders/9",
			token:      instituteToken,
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:   "internal snapshot",
			method: http.MethodGet,
			path:   "/internal/v1/orders/9",
			token:  internalKey,
			mockCall: func(f fields) {
				f.order.On("GetOrder", mock.Anything, (*model.Actor)(nil), uint64(9)).Return(snapshot, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:   "internal reconcile",
			method: http.MethodPost,
			path:   "/internal/v1/orders/9/reconcile",
			token:  internalKey,
			mockCall: func(f fields) {
				f.order.On("ReconcileOrder", mock.Anything, uint64(9)).
					Return(&model.ReconcileResult{OrderID: 9, Skipped: true, Applied: 30}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
			checkData: func(t *testing.T, data json.RawMessage) {
				var got model.ReconcileResult
				require.NoError(t, json.Unmarshal(data, &got))
				require.True(t, got.Skipped)
			},
		},
		{
			name:   "untyped app error is reported as internal",
			method: http.MethodGet,
			path:   "/v1/manufacturer/orders",
			token:  manufacturerToken,
			mockCall: func(f fields) {
				f.order.On("ListOrdersForManufacturer", mock.Anything, uint64(2)).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			f.handler().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			if env.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s (message %q)", env.Code, tt.wantCode, env.Message)
			}
			if tt.checkData != nil {
				tt.checkData(t, env.Data)
			}
		})
	}
}

func TestTransport_RequestIDIsEchoed(t *testing.T) {
	f := newFields(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	f.handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
