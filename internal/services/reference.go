package services

import (
	"context"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=reference.go -destination=mock_reference.go -package=services

// ReferenceReader reads cities and service types.
type ReferenceReader interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
	CityExists(ctx context.Context, cityID int64) (bool, error)
	ServiceTypeExists(ctx context.Context, serviceTypeID int64) (bool, error)
}

// ReferenceService exposes the reference data and validates references to it.
type ReferenceService struct {
	reader ReferenceReader
}

func NewReferenceService(reader ReferenceReader) *ReferenceService {
	return &ReferenceService{reader: reader}
}

func (svc *ReferenceService) ListCities(ctx context.Context) ([]models.City, error) {
	cities, err := svc.reader.ListCities(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list cities", "err", err)
		return nil, err
	}
	return cities, nil
}

func (svc *ReferenceService) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	types, err := svc.reader.ListServiceTypes(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list service types", "err", err)
		return nil, err
	}
	return types, nil
}

// CheckReferences fails with ErrReference when a given service type or city does not exist.
// Nil ids are not checked.
func (svc *ReferenceService) CheckReferences(ctx context.Context, serviceTypeID, cityID *int64) error {
	if serviceTypeID != nil {
		ok, err := svc.reader.ServiceTypeExists(ctx, *serviceTypeID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check service type", "service_type_id", *serviceTypeID, "err", err)
			return err
		}
		if !ok {
			return ErrUnknownServiceType
		}
	}
	if cityID != nil {
		ok, err := svc.reader.CityExists(ctx, *cityID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check city", "city_id", *cityID, "err", err)
			return err
		}
		if !ok {
			return ErrUnknownCity
		}
	}
	return nil
}
