package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

// StatsRepository groups requests and accept records by calendar month.
type StatsRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStatsRepository(db *sqlx.DB, txGetter TxGetter) *StatsRepository {
	return &StatsRepository{db: db, txGetter: txGetter}
}

// PublishedByMonth counts requests whose desired start date is in [from, to), per start month.
func (r *StatsRepository) PublishedByMonth(ctx context.Context, from, to time.Time, filter models.StatsFilter) ([]models.MonthCount, error) {
	const query = `
		SELECT to_char(sr.begin_date, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM service_requests sr
		WHERE sr.begin_date >= $1::DATE AND sr.begin_date < $2::DATE
		  AND ($3::BIGINT IS NULL OR sr.city_id = $3)
		  AND ($4::BIGINT IS NULL OR sr.service_type_id = $4)
		GROUP BY 1
		ORDER BY 1
	`
	return r.countByMonth(ctx, query, from, to, filter)
}

// CompletedByMonth counts accept records created in [from, to) per month, keeping only
// those whose request starts in the same window and passes the filter.
func (r *StatsRepository) CompletedByMonth(ctx context.Context, from, to time.Time, filter models.StatsFilter) ([]models.MonthCount, error) {
	const query = `
		SELECT to_char(ar.created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, COUNT(*) AS count
		FROM accept_records ar
		JOIN service_requests sr ON sr.request_id = ar.request_id
		WHERE ar.created_at >= $1::TIMESTAMPTZ AND ar.created_at < $2::TIMESTAMPTZ
		  AND sr.begin_date >= ($1::TIMESTAMPTZ AT TIME ZONE 'UTC')::DATE
		  AND sr.begin_date < ($2::TIMESTAMPTZ AT TIME ZONE 'UTC')::DATE
		  AND ($3::BIGINT IS NULL OR sr.city_id = $3)
		  AND ($4::BIGINT IS NULL OR sr.service_type_id = $4)
		GROUP BY 1
		ORDER BY 1
	`
	return r.countByMonth(ctx, query, from, to, filter)
}

func (r *StatsRepository) countByMonth(ctx context.Context, query string, from, to time.Time, filter models.StatsFilter) ([]models.MonthCount, error) {
	args := []any{from, to, filter.CityID, filter.ServiceTypeID}

	counts := []models.MonthCount{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &counts, query, args...)
	logQuery(ctx, query, args, counts, err)

	return counts, translateError(err)
}
