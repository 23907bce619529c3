package catalog

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	masterrepo "github.com/muhammadheryan/medsupply/repository/master"
	"github.com/muhammadheryan/medsupply/utils/errors"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// CatalogApp lists what a manufacturer supplies so institutes can pick the
// medicine for a new order.
type CatalogApp interface {
	ListCatalog(ctx context.Context, manufacturerID uint64, page, perPage int) (*model.CatalogResponse, error)
}

type catalogAppImpl struct {
	masterRepo masterrepo.MasterRepository
}

func NewCatalogApp(masterRepo masterrepo.MasterRepository) CatalogApp {
	return &catalogAppImpl{masterRepo: masterRepo}
}

func (s *catalogAppImpl) ListCatalog(ctx context.Context, manufacturerID uint64, page, perPage int) (*model.CatalogResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	manufacturer, err := s.masterRepo.GetManufacturer(ctx, manufacturerID)
	if err != nil {
		logger.Error("[ListCatalog] error masterRepo.GetManufacturer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if manufacturer == nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidReference, fmt.Sprintf("manufacturer %d not found", manufacturerID))
	}

	items, total, err := s.masterRepo.ListCatalog(ctx, manufacturerID, page, perPage)
	if err != nil {
		logger.Error("[ListCatalog] error masterRepo.ListCatalog", zap.Uint64("manufacturer_id", manufacturerID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CatalogResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
