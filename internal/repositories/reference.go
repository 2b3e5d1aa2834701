package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

// ReferenceRepository reads the static city and service type tables.
type ReferenceRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReferenceRepository(db *sqlx.DB, txGetter TxGetter) *ReferenceRepository {
	return &ReferenceRepository{db: db, txGetter: txGetter}
}

func (r *ReferenceRepository) ListCities(ctx context.Context) ([]models.City, error) {
	const query = `SELECT city_id, name, province_id, province_name FROM cities ORDER BY city_id`

	cities := []models.City{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &cities, query)
	logQuery(ctx, query, nil, len(cities), err)

	return cities, translateError(err)
}

func (r *ReferenceRepository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	const query = `SELECT service_type_id, name, description FROM service_types ORDER BY service_type_id`

	types := []models.ServiceType{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &types, query)
	logQuery(ctx, query, nil, len(types), err)

	return types, translateError(err)
}

// CityExists reports whether a city with the id exists.
func (r *ReferenceRepository) CityExists(ctx context.Context, cityID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM cities WHERE city_id = $1)`
	return r.exists(ctx, query, cityID)
}

// ServiceTypeExists reports whether a service type with the id exists.
func (r *ReferenceRepository) ServiceTypeExists(ctx context.Context, serviceTypeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM service_types WHERE service_type_id = $1)`
	return r.exists(ctx, query, serviceTypeID)
}

func (r *ReferenceRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, id)
	logQuery(ctx, query, []any{id}, ok, err)

	return ok, translateError(err)
}
