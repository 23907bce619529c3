package prescription

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	inventoryrepo "github.com/muhammadheryan/medsupply/repository/inventory"
	masterrepo "github.com/muhammadheryan/medsupply/repository/master"
	prescriptionrepo "github.com/muhammadheryan/medsupply/repository/prescription"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	txrepo "github.com/muhammadheryan/medsupply/repository/tx"
	"github.com/muhammadheryan/medsupply/thirdparty/rabbitmq"
	"github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

type PrescriptionApp interface {
	DispensePrescription(ctx context.Context, req *model.DispenseRequest) (*model.DispenseResult, error)
	ListPrescriptions(ctx context.Context, instituteID uint64) ([]model.PrescriptionSummary, error)
}

type prescriptionAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	inventoryRepo    inventoryrepo.InventoryRepository
	prescriptionRepo prescriptionrepo.PrescriptionRepository
	masterRepo       masterrepo.MasterRepository
	redisRepo        redisrepo.Repository
	publisher        rabbitmq.EventPublisher
	now              func() time.Time
}

func NewPrescriptionApp(config *config.Config, txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository,
	prescriptionRepo prescriptionrepo.PrescriptionRepository, masterRepo masterrepo.MasterRepository,
	redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) PrescriptionApp {
	return &prescriptionAppImpl{
		config:           config,
		txRepo:           txRepo,
		inventoryRepo:    inventoryRepo,
		prescriptionRepo: prescriptionRepo,
		masterRepo:       masterRepo,
		redisRepo:        redisRepo,
		publisher:        publisher,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// working is a locked inventory line and its quantity after the lines seen so far.
type working struct {
	line     *model.InventoryLine
	quantity int64
}

// DispensePrescription deducts every line from the institute inventory or
// none of them. A line asking for more than is on hand takes what is left.
func (s *prescriptionAppImpl) DispensePrescription(ctx context.Context, req *model.DispenseRequest) (*model.DispenseResult, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "at least one medicine is required")
	}
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
		}
	}
	if err := s.validateRecipient(ctx, req.InstituteID, req.Recipient); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DispensePrescription] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	lines := make(map[uint64]*working, len(req.Lines))
	order := make([]uint64, 0, len(req.Lines))
	for _, l := range req.Lines {
		if _, ok := lines[l.MedicineID]; !ok {
			lines[l.MedicineID] = nil
			order = append(order, l.MedicineID)
		}
	}

	// lines are locked in ascending medicine id so concurrent dispenses at one
	// institute cannot deadlock each other
	lockOrder := append([]uint64(nil), order...)
	sort.Slice(lockOrder, func(i, j int) bool { return lockOrder[i] < lockOrder[j] })
	for _, medicineID := range lockOrder {
		line, err := s.inventoryRepo.GetInstituteInventoryForUpdateTx(ctx, tx, req.InstituteID, medicineID)
		if err != nil {
			logger.Error("[DispensePrescription] lock inventory line", zap.Uint64("medicine_id", medicineID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if line == nil {
			return nil, errors.SetCustomErrorf(constant.ErrMedicineUnavailable,
				fmt.Sprintf("medicine %d is not stocked by this institute", medicineID))
		}
		lines[medicineID] = &working{line: line, quantity: line.Quantity}
	}

	result := &model.DispenseResult{Lines: make([]model.DispenseLineResult, 0, len(req.Lines))}
	for _, l := range req.Lines {
		w := lines[l.MedicineID]
		if w.quantity <= 0 {
			return nil, errors.SetCustomErrorf(constant.ErrOutOfStock, fmt.Sprintf("%s is out of stock", w.line.MedicineName))
		}

		deducted := l.Quantity
		if deducted > w.quantity {
			deducted = w.quantity
		}
		lr := model.DispenseLineResult{
			MedicineID:   l.MedicineID,
			MedicineName: w.line.MedicineName,
			Requested:    l.Quantity,
			Before:       w.quantity,
			Deducted:     deducted,
			After:        w.quantity - deducted,
			Threshold:    w.line.Threshold,
			Partial:      deducted < l.Quantity,
		}
		lr.LowStock = lr.After <= lr.Threshold
		w.quantity = lr.After

		result.PartialFulfillment = result.PartialFulfillment || lr.Partial
		result.Lines = append(result.Lines, lr)
	}

	for _, medicineID := range lockOrder {
		w := lines[medicineID]
		if err := s.inventoryRepo.UpdateInstituteInventoryTx(ctx, tx, w.line.ID, w.quantity); err != nil {
			logger.Error("[DispensePrescription] update inventory line", zap.Uint64("line_id", w.line.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	entity := &model.PrescriptionEntity{
		InstituteID:    req.InstituteID,
		EmployeeID:     req.Recipient.EmployeeID,
		IsFamilyMember: req.Recipient.IsFamilyMember,
		Notes:          req.Notes,
		CreatedAt:      s.now(),
	}
	if req.Recipient.IsFamilyMember {
		id := req.Recipient.FamilyMemberID
		entity.FamilyMemberID = &id
	}
	prescriptionID, err := s.prescriptionRepo.InsertPrescriptionTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[DispensePrescription] insert prescription", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.PrescriptionItemEntity, 0, len(result.Lines))
	for _, lr := range result.Lines {
		items = append(items, model.PrescriptionItemEntity{
			PrescriptionID:    prescriptionID,
			MedicineID:        lr.MedicineID,
			MedicineName:      lr.MedicineName,
			QuantityRequested: lr.Requested,
			QuantityDeducted:  lr.Deducted,
		})
	}
	if err := s.prescriptionRepo.InsertPrescriptionItemsTx(ctx, tx, prescriptionID, items); err != nil {
		logger.Error("[DispensePrescription] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DispensePrescription] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	result.PrescriptionID = prescriptionID

	s.invalidateInventory(ctx, req.InstituteID)
	for _, medicineID := range order {
		w := lines[medicineID]
		if w.quantity > w.line.Threshold {
			continue
		}
		item := model.LowStockItem{MedicineID: medicineID, Name: w.line.MedicineName, Quantity: w.quantity, Threshold: w.line.Threshold}
		result.LowStock = append(result.LowStock, item)
		s.signalLowStock(ctx, req.InstituteID, item)
	}

	return result, nil
}

func (s *prescriptionAppImpl) validateRecipient(ctx context.Context, instituteID uint64, r model.Recipient) error {
	if r.IsFamilyMember != (r.FamilyMemberID != 0) {
		return errors.SetCustomErrorf(constant.ErrInvalidRequest, "family_member_id must be set exactly when is_family_member is true")
	}

	institute, err := s.masterRepo.GetInstitute(ctx, instituteID)
	if err != nil {
		logger.Error("[DispensePrescription] get institute", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if institute == nil {
		return errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("institute %d not found", instituteID))
	}

	employee, err := s.masterRepo.GetEmployee(ctx, r.EmployeeID)
	if err != nil {
		logger.Error("[DispensePrescription] get employee", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if employee == nil || employee.InstituteID != instituteID {
		return errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("employee %d not found", r.EmployeeID))
	}

	if !r.IsFamilyMember {
		return nil
	}
	member, err := s.masterRepo.GetFamilyMember(ctx, r.FamilyMemberID)
	if err != nil {
		logger.Error("[DispensePrescription] get family member", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil || member.EmployeeID != employee.ID {
		return errors.SetCustomErrorf(constant.ErrInvalidReference,
			fmt.Sprintf("family member %d does not belong to employee %d", r.FamilyMemberID, r.EmployeeID))
	}
	return nil
}

func (s *prescriptionAppImpl) invalidateInventory(ctx context.Context, instituteID uint64) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.Delete(ctx, constant.InventoryCacheKey(instituteID)); err != nil {
		logger.Error("[DispensePrescription] invalidate inventory cache", zap.Uint64("institute_id", instituteID), zap.String("error", err.Error()))
	}
}

// signalLowStock is informational: failures are logged and the dispense stands.
// One signal per institute and medicine is sent per LowStockAlertTTL.
func (s *prescriptionAppImpl) signalLowStock(ctx context.Context, instituteID uint64, item model.LowStockItem) {
	logger.Warn("[DispensePrescription] low stock",
		zap.Uint64("institute_id", instituteID), zap.Uint64("medicine_id", item.MedicineID),
		zap.Int64("quantity", item.Quantity), zap.Int64("threshold", item.Threshold))

	if s.redisRepo != nil {
		first, err := s.redisRepo.SetNX(ctx, constant.LowStockAlertKey(instituteID, item.MedicineID), "1", s.config.Cache.LowStockAlertTTL)
		if err != nil {
			logger.Error("[DispensePrescription] low stock dedupe", zap.String("error", err.Error()))
		} else if !first {
			return
		}
	}

	if s.publisher == nil {
		return
	}
	msg := rabbitmq.LowStockMessage{
		InstituteID:  instituteID,
		MedicineID:   item.MedicineID,
		MedicineName: item.Name,
		Quantity:     item.Quantity,
		Threshold:    item.Threshold,
		OccurredAt:   s.now(),
	}
	if err := s.publisher.PublishLowStock(ctx, msg); err != nil {
		logger.Error("[DispensePrescription] publish low stock", zap.Uint64("medicine_id", item.MedicineID), zap.String("error", err.Error()))
	}
}

func (s *prescriptionAppImpl) ListPrescriptions(ctx context.Context, instituteID uint64) ([]model.PrescriptionSummary, error) {
	list, err := s.prescriptionRepo.ListByInstitute(ctx, instituteID)
	if err != nil {
		logger.Error("[ListPrescriptions] list prescriptions", zap.Uint64("institute_id", instituteID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}
