package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

const requestColumns = `request_id, owner_id, title, description, service_type_id, city_id, begin_date, files, state, created_at, updated_at`

type ServiceRequestReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewServiceRequestReadRepository(db *sqlx.DB, txGetter TxGetter) *ServiceRequestReadRepository {
	return &ServiceRequestReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the request or ErrNotFound.
func (r *ServiceRequestReadRepository) GetByID(ctx context.Context, requestID int64) (*models.ServiceRequestDB, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE request_id = $1`
	return r.get(ctx, query, requestID)
}

// GetByIDForUpdate returns the request and locks its row until the transaction ends.
func (r *ServiceRequestReadRepository) GetByIDForUpdate(ctx context.Context, requestID int64) (*models.ServiceRequestDB, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE request_id = $1 FOR UPDATE`
	return r.get(ctx, query, requestID)
}

func (r *ServiceRequestReadRepository) get(ctx context.Context, query string, requestID int64) (*models.ServiceRequestDB, error) {
	var req models.ServiceRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, requestID)
	logQuery(ctx, query, []any{requestID}, req.State, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// GetView returns the request joined with its publisher, category and city names.
func (r *ServiceRequestReadRepository) GetView(ctx context.Context, requestID int64) (*models.ServiceRequestView, error) {
	query := requestViewSelect + ` WHERE sr.request_id = $1`

	var view models.ServiceRequestView
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &view, query, requestID)
	logQuery(ctx, query, []any{requestID}, view.RequestID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &view, nil
}

const requestViewSelect = `
	SELECT
		sr.request_id, sr.owner_id, sr.title, sr.description, sr.service_type_id, sr.city_id,
		sr.begin_date, sr.files, sr.state, sr.created_at, sr.updated_at,
		u.display_name AS owner_name,
		st.name        AS service_type_name,
		c.name         AS city_name
	FROM service_requests sr
	JOIN users u          ON u.user_id = sr.owner_id
	JOIN service_types st ON st.service_type_id = sr.service_type_id
	JOIN cities c         ON c.city_id = sr.city_id`

const requestFilterWhere = `
	WHERE ($1::BIGINT IS NULL OR sr.owner_id = $1)
	  AND ($2::BIGINT IS NULL OR sr.service_type_id = $2)
	  AND ($3::BIGINT IS NULL OR sr.city_id = $3)
	  AND ($4::SMALLINT IS NULL OR sr.state = $4)`

// List returns one page of requests matching filter, newest first, and the total match count.
func (r *ServiceRequestReadRepository) List(ctx context.Context, filter models.ServiceRequestFilter, limit, offset int) ([]models.ServiceRequestView, int, error) {
	exec := executor(ctx, r.db, r.txGetter)
	filterArgs := []any{filter.OwnerID, filter.ServiceTypeID, filter.CityID, filter.State}

	countQuery := `SELECT COUNT(*) FROM service_requests sr` + requestFilterWhere
	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, filterArgs...)
	logQuery(ctx, countQuery, filterArgs, total, err)
	if err != nil {
		return nil, 0, translateError(err)
	}

	query := requestViewSelect + requestFilterWhere + `
		ORDER BY sr.created_at DESC, sr.request_id DESC
		LIMIT $5 OFFSET $6`
	args := append(filterArgs, limit, offset)

	items := []models.ServiceRequestView{}
	err = sqlx.SelectContext(ctx, exec, &items, query, args...)
	logQuery(ctx, query, args, len(items), err)
	if err != nil {
		return nil, 0, translateError(err)
	}

	return items, total, nil
}

type ServiceRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewServiceRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *ServiceRequestWriteRepository {
	return &ServiceRequestWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a published request without an update date.
func (r *ServiceRequestWriteRepository) Create(ctx context.Context, ownerID int64, fields models.ServiceRequestFields) (*models.ServiceRequestDB, error) {
	query := `
		INSERT INTO service_requests (owner_id, title, description, service_type_id, city_id, begin_date, files, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + requestColumns
	args := []any{ownerID, fields.Title, fields.Description, fields.ServiceTypeID, fields.CityID, fields.BeginDate, fields.Files, models.RequestPublished}

	var created models.ServiceRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(ctx, query, args, created.RequestID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch and stamps updated_at.
func (r *ServiceRequestWriteRepository) Update(ctx context.Context, requestID int64, patch models.ServiceRequestPatch) (*models.ServiceRequestDB, error) {
	query := `
		UPDATE service_requests SET
			title           = COALESCE($2::VARCHAR, title),
			description     = COALESCE($3::VARCHAR, description),
			service_type_id = COALESCE($4::BIGINT, service_type_id),
			city_id         = COALESCE($5::BIGINT, city_id),
			begin_date      = COALESCE($6::DATE, begin_date),
			files           = COALESCE($7::TEXT, files),
			updated_at      = NOW()
		WHERE request_id = $1
		RETURNING ` + requestColumns
	args := []any{requestID, patch.Title, patch.Description, patch.ServiceTypeID, patch.CityID, patch.BeginDate, patch.Files}

	var updated models.ServiceRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(ctx, query, args, updated.RequestID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// SetState changes the request state and stamps updated_at.
func (r *ServiceRequestWriteRepository) SetState(ctx context.Context, requestID int64, state int) error {
	const query = `UPDATE service_requests SET state = $2, updated_at = NOW() WHERE request_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, requestID, state)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{requestID, state}, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
