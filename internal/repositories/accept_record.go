package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

const acceptColumns = `accept_id, response_id, request_id, publisher_id, responder_id, created_at`

// AcceptRecordRepository stores the completion records of accepted responses.
type AcceptRecordRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAcceptRecordRepository(db *sqlx.DB, txGetter TxGetter) *AcceptRecordRepository {
	return &AcceptRecordRepository{db: db, txGetter: txGetter}
}

// Create inserts the record. A second record for the same request or response fails with ErrDuplicate.
func (r *AcceptRecordRepository) Create(ctx context.Context, record models.AcceptRecordDB) (*models.AcceptRecordDB, error) {
	query := `
		INSERT INTO accept_records (response_id, request_id, publisher_id, responder_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + acceptColumns
	args := []any{record.ResponseID, record.RequestID, record.PublisherID, record.ResponderID}

	var created models.AcceptRecordDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(ctx, query, args, created.AcceptID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// ExistsForRequest reports whether the request already has an accepted response.
func (r *AcceptRecordRepository) ExistsForRequest(ctx context.Context, requestID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accept_records WHERE request_id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, requestID)
	logQuery(ctx, query, []any{requestID}, exists, err)

	return exists, translateError(err)
}

// GetByRequestID returns the record of the request or ErrNotFound.
func (r *AcceptRecordRepository) GetByRequestID(ctx context.Context, requestID int64) (*models.AcceptRecordDB, error) {
	query := `SELECT ` + acceptColumns + ` FROM accept_records WHERE request_id = $1`

	var record models.AcceptRecordDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &record, query, requestID)
	logQuery(ctx, query, []any{requestID}, record.AcceptID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}
