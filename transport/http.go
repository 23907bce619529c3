package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	actorapp "github.com/muhammadheryan/medsupply/application/actor"
	catalogapp "github.com/muhammadheryan/medsupply/application/catalog"
	inventoryapp "github.com/muhammadheryan/medsupply/application/inventory"
	orderapp "github.com/muhammadheryan/medsupply/application/order"
	prescriptionapp "github.com/muhammadheryan/medsupply/application/prescription"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	utilsContext "github.com/muhammadheryan/medsupply/utils/context"
	"github.com/muhammadheryan/medsupply/utils/errors"
	validatorx "github.com/muhammadheryan/medsupply/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderApp        orderapp.OrderApp
	PrescriptionApp prescriptionapp.PrescriptionApp
	InventoryApp    inventoryapp.InventoryApp
	CatalogApp      catalogapp.CatalogApp
}

// Apps are the use cases the router dispatches to.
type Apps struct {
	Actor        actorapp.ActorApp
	Order        orderapp.OrderApp
	Prescription prescriptionapp.PrescriptionApp
	Inventory    inventoryapp.InventoryApp
	Catalog      catalogapp.CatalogApp
}

func NewTransport(apps Apps, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:        apps.Order,
		PrescriptionApp: apps.Prescription,
		InventoryApp:    apps.Inventory,
		CatalogApp:      apps.Catalog,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// institute routes
	institute := router.PathPrefix("/v1/institute").Subrouter()
	institute.Use(RequireRole(constant.RoleInstitute))
	institute.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	institute.HandleFunc("/orders", rh.ListInstituteOrders).Methods(http.MethodGet)
	institute.HandleFunc("/orders/{orderId}/deliver", rh.InstituteMarkDelivered).Methods(http.MethodPut)
	institute.HandleFunc("/inventory", rh.GetInventory).Methods(http.MethodGet)
	institute.HandleFunc("/inventory/low-stock", rh.ListLowStock).Methods(http.MethodGet)
	institute.HandleFunc("/prescriptions", rh.DispensePrescription).Methods(http.MethodPost)
	institute.HandleFunc("/prescriptions", rh.ListPrescriptions).Methods(http.MethodGet)

	// manufacturer routes
	manufacturer := router.PathPrefix("/v1/manufacturer").Subrouter()
	manufacturer.Use(RequireRole(constant.RoleManufacturer))
	manufacturer.HandleFunc("/orders", rh.ListManufacturerOrders).Methods(http.MethodGet)
	manufacturer.HandleFunc("/orders/{orderId}/accept", rh.ManufacturerAccept).Methods(http.MethodPut)
	manufacturer.HandleFunc("/orders/{orderId}/reject", rh.ManufacturerReject).Methods(http.MethodPut)
	manufacturer.HandleFunc("/orders/{orderId}/deliver", rh.ManufacturerMarkDelivered).Methods(http.MethodPut)

	// either side
	router.HandleFunc("/v1/orders/{orderId}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/v1/manufacturers/{manufacturerId}/catalog", rh.ListCatalog).Methods(http.MethodGet)

	// internal routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/{orderId}", rh.GetOrderInternal).Methods(http.MethodGet)
	internal.HandleFunc("/orders/{orderId}/reconcile", rh.ReconcileOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(apps.Actor))

	return router
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// CreateOrder handler
// @Summary Place an order
// @Description Institute orders a quantity of one manufacturer's medicine. Both statuses start PENDING.
// @Tags Institute
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} model.CreateOrderResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /v1/institute/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	var req model.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.InstituteID = caller.ID

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListInstituteOrders handler
// @Summary List the institute's orders, newest first
// @Tags Institute
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderSnapshot
// @Router /v1/institute/orders [get]
func (s *RestHandler) ListInstituteOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	res, err := s.OrderApp.ListOrdersForInstitute(ctx, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InstituteMarkDelivered handler
// @Summary Confirm delivery from the institute side
// @Description Reconciles stock when the manufacturer has also marked the order delivered.
// @Tags Institute
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Param request body model.InstituteDeliverRequest true "Deliver Request"
// @Success 200 {object} model.OrderSnapshot
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/institute/orders/{orderId}/deliver [put]
func (s *RestHandler) InstituteMarkDelivered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	var req model.InstituteDeliverRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.InstituteID = caller.ID
	req.OrderID = orderID

	res, err := s.OrderApp.InstituteMarkDelivered(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetInventory handler
// @Summary Institute inventory
// @Tags Institute
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.InventoryItem
// @Router /v1/institute/inventory [get]
func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	res, err := s.InventoryApp.GetInventory(ctx, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListLowStock handler
// @Summary Medicines below their threshold
// @Tags Institute
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LowStockResponse
// @Router /v1/institute/inventory/low-stock [get]
func (s *RestHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	res, err := s.InventoryApp.ListLowStock(ctx, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DispensePrescription handler
// @Summary Dispense a prescription from institute inventory
// @Description All lines are deducted together or not at all. A line asking for more than is on hand takes what is left.
// @Tags Institute
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DispenseRequest true "Dispense Request"
// @Success 200 {object} model.DispenseResult
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /v1/institute/prescriptions [post]
func (s *RestHandler) DispensePrescription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	var req model.DispenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.InstituteID = caller.ID

	res, err := s.PrescriptionApp.DispensePrescription(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPrescriptions handler
// @Summary Prescription history of the institute
// @Tags Institute
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PrescriptionSummary
// @Router /v1/institute/prescriptions [get]
func (s *RestHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	res, err := s.PrescriptionApp.ListPrescriptions(ctx, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListManufacturerOrders handler
// @Summary List orders placed with the manufacturer, newest first
// @Tags Manufacturer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderSnapshot
// @Router /v1/manufacturer/orders [get]
func (s *RestHandler) ListManufacturerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	res, err := s.OrderApp.ListOrdersForManufacturer(ctx, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ManufacturerAccept handler
// @Summary Approve a pending order
// @Tags Manufacturer
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderSnapshot
// @Failure 409 {object} Response
// @Router /v1/manufacturer/orders/{orderId}/accept [put]
func (s *RestHandler) ManufacturerAccept(w http.ResponseWriter, r *http.Request) {
	s.manufacturerAction(w, r, s.OrderApp.ManufacturerAccept)
}

// ManufacturerReject handler
// @Summary Reject a pending order
// @Description Both sides become REJECTED.
// @Tags Manufacturer
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderSnapshot
// @Failure 409 {object} Response
// @Router /v1/manufacturer/orders/{orderId}/reject [put]
func (s *RestHandler) ManufacturerReject(w http.ResponseWriter, r *http.Request) {
	s.manufacturerAction(w, r, s.OrderApp.ManufacturerReject)
}

// ManufacturerMarkDelivered handler
// @Summary Mark an approved order delivered
// @Description Reconciles stock when the institute has also confirmed delivery.
// @Tags Manufacturer
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderSnapshot
// @Failure 409 {object} Response
// @Router /v1/manufacturer/orders/{orderId}/deliver [put]
func (s *RestHandler) ManufacturerMarkDelivered(w http.ResponseWriter, r *http.Request) {
	s.manufacturerAction(w, r, s.OrderApp.ManufacturerMarkDelivered)
}

type manufacturerActionFunc func(ctx context.Context, req *model.OrderActionRequest) (*model.OrderSnapshot, error)

func (s *RestHandler) manufacturerAction(w http.ResponseWriter, r *http.Request, action manufacturerActionFunc) {
	ctx := r.Context()
	caller, _ := utilsContext.GetActor(ctx)

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	res, err := action(ctx, &model.OrderActionRequest{ManufacturerID: caller.ID, OrderID: orderID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order snapshot
// @Description Visible to the ordering institute and the supplying manufacturer only.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderSnapshot
// @Failure 404 {object} Response
// @Router /v1/orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, &caller, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCatalog handler
// @Summary Medicines a manufacturer supplies
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param manufacturerId path int true "Manufacturer ID"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.CatalogResponse
// @Failure 404 {object} Response
// @Router /v1/manufacturers/{manufacturerId}/catalog [get]
func (s *RestHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	manufacturerID, ok := pathID(w, r, "manufacturerId")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.CatalogApp.ListCatalog(ctx, manufacturerID, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrderInternal handler
// @Summary Authoritative order snapshot for internal consumers
// @Tags Internal
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderSnapshot
// @Failure 404 {object} Response
// @Router /internal/v1/orders/{orderId} [get]
func (s *RestHandler) GetOrderInternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, nil, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReconcileOrder handler
// @Summary Re-run stock reconciliation for a delivered order
// @Description No-op for an order that was already reconciled.
// @Tags Internal
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.ReconcileResult
// @Failure 409 {object} Response
// @Router /internal/v1/orders/{orderId}/reconcile [post]
func (s *RestHandler) ReconcileOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	res, err := s.OrderApp.ReconcileOrder(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		writeError(w, errors.SetCustomErrorf(constant.ErrInvalidRequest, fmt.Sprintf("invalid %s", name)))
		return 0, false
	}
	return id, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, validationError(err))
		return false
	}
	return true
}

// validationError maps a failed quantity rule to InvalidQuantity and
// everything else to InvalidRequest naming the first offending field.
func validationError(err error) error {
	var fieldErrs gpvalidator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Quantity" {
			return errors.SetCustomError(constant.ErrInvalidQuantity)
		}
	}
	fe := fieldErrs[0]
	return errors.SetCustomErrorf(constant.ErrInvalidRequest, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
}
