package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

const responseColumns = `response_id, responder_id, request_id, title, description, files, state, created_at, updated_at`

type ServiceResponseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewServiceResponseReadRepository(db *sqlx.DB, txGetter TxGetter) *ServiceResponseReadRepository {
	return &ServiceResponseReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the response or ErrNotFound.
func (r *ServiceResponseReadRepository) GetByID(ctx context.Context, responseID int64) (*models.ServiceResponseDB, error) {
	query := `SELECT ` + responseColumns + ` FROM service_responses WHERE response_id = $1`
	return r.get(ctx, query, responseID)
}

// GetByIDForUpdate returns the response and locks its row until the transaction ends.
func (r *ServiceResponseReadRepository) GetByIDForUpdate(ctx context.Context, responseID int64) (*models.ServiceResponseDB, error) {
	query := `SELECT ` + responseColumns + ` FROM service_responses WHERE response_id = $1 FOR UPDATE`
	return r.get(ctx, query, responseID)
}

func (r *ServiceResponseReadRepository) get(ctx context.Context, query string, responseID int64) (*models.ServiceResponseDB, error) {
	var resp models.ServiceResponseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &resp, query, responseID)
	logQuery(ctx, query, []any{responseID}, resp.State, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &resp, nil
}

// CountByRequest counts the responses of a request in any state.
func (r *ServiceResponseReadRepository) CountByRequest(ctx context.Context, requestID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM service_responses WHERE request_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, requestID)
	logQuery(ctx, query, []any{requestID}, count, err)

	return count, translateError(err)
}

// The responder identity of an accepted response comes from its accept record.
const responseViewSelect = `
	SELECT
		r.response_id, r.responder_id, r.request_id, r.title, r.description,
		r.files, r.state, r.created_at, r.updated_at,
		u.display_name AS responder_name,
		u.phone        AS responder_phone
	FROM service_responses r
	JOIN service_requests sr     ON sr.request_id = r.request_id
	LEFT JOIN accept_records ar  ON ar.response_id = r.response_id
	JOIN users u                 ON u.user_id = COALESCE(ar.responder_id, r.responder_id)`

const responseFilterWhere = `
	WHERE ($1::BIGINT IS NULL OR r.responder_id = $1)
	  AND ($2::BIGINT IS NULL OR r.request_id = $2)
	  AND ($3::SMALLINT IS NULL OR r.state = $3)
	  AND ($4::BIGINT IS NULL OR sr.city_id = $4)`

// GetView returns the response enriched with the responder name and phone.
func (r *ServiceResponseReadRepository) GetView(ctx context.Context, responseID int64) (*models.ServiceResponseView, error) {
	query := responseViewSelect + ` WHERE r.response_id = $1`

	var view models.ServiceResponseView
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &view, query, responseID)
	logQuery(ctx, query, []any{responseID}, view.ResponseID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &view, nil
}

// List returns one page of responses matching filter, newest first, and the total match count.
func (r *ServiceResponseReadRepository) List(ctx context.Context, filter models.ServiceResponseFilter, limit, offset int) ([]models.ServiceResponseView, int, error) {
	exec := executor(ctx, r.db, r.txGetter)
	filterArgs := []any{filter.ResponderID, filter.RequestID, filter.State, filter.CityID}

	countQuery := `
		SELECT COUNT(*)
		FROM service_responses r
		JOIN service_requests sr ON sr.request_id = r.request_id` + responseFilterWhere
	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, filterArgs...)
	logQuery(ctx, countQuery, filterArgs, total, err)
	if err != nil {
		return nil, 0, translateError(err)
	}

	query := responseViewSelect + responseFilterWhere + `
		ORDER BY r.created_at DESC, r.response_id DESC
		LIMIT $5 OFFSET $6`
	args := append(filterArgs, limit, offset)

	items := []models.ServiceResponseView{}
	err = sqlx.SelectContext(ctx, exec, &items, query, args...)
	logQuery(ctx, query, args, len(items), err)
	if err != nil {
		return nil, 0, translateError(err)
	}

	return items, total, nil
}

type ServiceResponseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewServiceResponseWriteRepository(db *sqlx.DB, txGetter TxGetter) *ServiceResponseWriteRepository {
	return &ServiceResponseWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a pending response.
func (r *ServiceResponseWriteRepository) Create(ctx context.Context, responderID, requestID int64, fields models.ServiceResponseFields) (*models.ServiceResponseDB, error) {
	query := `
		INSERT INTO service_responses (responder_id, request_id, title, description, files, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + responseColumns
	args := []any{responderID, requestID, fields.Title, fields.Description, fields.Files, models.ResponsePending}

	var created models.ServiceResponseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(ctx, query, args, created.ResponseID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch and stamps updated_at.
func (r *ServiceResponseWriteRepository) Update(ctx context.Context, responseID int64, patch models.ServiceResponsePatch) (*models.ServiceResponseDB, error) {
	query := `
		UPDATE service_responses SET
			title       = COALESCE($2::VARCHAR, title),
			description = COALESCE($3::VARCHAR, description),
			files       = COALESCE($4::TEXT, files),
			updated_at  = NOW()
		WHERE response_id = $1
		RETURNING ` + responseColumns
	args := []any{responseID, patch.Title, patch.Description, patch.Files}

	var updated models.ServiceResponseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(ctx, query, args, updated.ResponseID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// SetState changes the response state and stamps updated_at.
func (r *ServiceResponseWriteRepository) SetState(ctx context.Context, responseID int64, state int) error {
	const query = `UPDATE service_responses SET state = $2, updated_at = NOW() WHERE response_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, responseID, state)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{responseID, state}, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
