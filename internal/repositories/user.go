package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/models"
)

const userColumns = `user_id, username, display_name, password_hash, id_type, id_number, phone, role, description, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)
	logQuery(ctx, query, []any{userID}, user.Username, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByUsername returns the user with the given username or ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)
	logQuery(ctx, query, []any{username}, user.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetActivity counts the requests, responses and completed services of a user.
func (r *UserReadRepository) GetActivity(ctx context.Context, userID int64) (*models.UserActivity, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM service_requests WHERE owner_id = $1)      AS requests_count,
			(SELECT COUNT(*) FROM service_responses WHERE responder_id = $1) AS responses_count,
			(SELECT COUNT(*) FROM accept_records WHERE responder_id = $1)    AS completed_count
	`

	var activity models.UserActivity
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &activity, query, userID)
	logQuery(ctx, query, []any{userID}, activity, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &activity, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user with the normal role. Unique violations surface as ErrDuplicate.
func (r *UserWriteRepository) Create(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	query := `
		INSERT INTO users (username, display_name, password_hash, id_type, id_number, phone, role, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + userColumns
	args := []any{user.Username, user.DisplayName, user.PasswordHash, user.IDType, user.IDNumber, user.Phone, models.RoleNormal, user.Description}

	var created models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(ctx, query, []any{user.Username, user.Phone}, created.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// UpdateProfile applies the non-nil fields of patch and stamps updated_at.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.UserDB, error) {
	query := `
		UPDATE users SET
			display_name = COALESCE($2::VARCHAR, display_name),
			phone        = COALESCE($3::VARCHAR, phone),
			description  = COALESCE($4::TEXT, description),
			updated_at   = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns
	args := []any{userID, patch.DisplayName, patch.Phone, patch.Description}

	var updated models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(ctx, query, args, updated.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{userID}, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
