package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const redacted = "<redacted>"

const userColumns = `user_id, username, email, full_name, avatar, cover_image,
	password_hash, refresh_token, created_at, updated_at`

// TxGetter returns the request transaction from the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	var found any
	if err == nil {
		found = user.UserID
	}
	logQuery(query, args, found, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given ID, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

// GetByUsernameOrEmail returns the first user matching the username OR the email.
// Nil arguments are ignored; both nil returns nil.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	if username == nil && email == nil {
		return nil, nil
	}

	const query = `SELECT ` + userColumns + ` FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = LOWER($1))
		   OR ($2::VARCHAR IS NOT NULL AND email = LOWER($2))
		LIMIT 1`
	return r.get(ctx, query, username, email)
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user. Username and email are stored lowercase.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, email, full_name, avatar, cover_image,
		                   password_hash, created_at, updated_at)
		VALUES ($1, LOWER($2), LOWER($3), $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns

	args := []any{user.UserID, user.Username, user.Email, user.FullName, user.Avatar, user.CoverImage, user.PasswordHash}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), user, query, args...)

	args[6] = redacted
	logQuery(query, args, user.UserID, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args []any, logArgs []any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, logArgs, rowsAffected, err)
	return err
}

// SetRefreshToken stores the current refresh token; nil clears it.
func (r *UserWriteRepository) SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	const query = `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE user_id = $1`

	var logged any
	if token != nil {
		logged = redacted
	}
	return r.exec(ctx, query, []any{userID, token}, []any{userID, logged})
}

// SetPasswordHash replaces the stored password hash.
func (r *UserWriteRepository) SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, []any{userID, hash}, []any{userID, redacted})
}

func (r *UserWriteRepository) update(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.UserID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isUniqueViolation(err):
		return nil, ErrDuplicate
	case err != nil:
		return nil, err
	}
	return &user, nil
}

// UpdateAccount sets full name and email and returns the updated user.
func (r *UserWriteRepository) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.UserDB, error) {
	const query = `UPDATE users SET full_name = $2, email = LOWER($3), updated_at = NOW()
		WHERE user_id = $1 RETURNING ` + userColumns
	return r.update(ctx, query, userID, fullName, email)
}

// UpdateAvatar sets the avatar URL and returns the updated user.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, url string) (*models.UserDB, error) {
	const query = `UPDATE users SET avatar = $2, updated_at = NOW()
		WHERE user_id = $1 RETURNING ` + userColumns
	return r.update(ctx, query, userID, url)
}

// UpdateCoverImage sets the cover image URL and returns the updated user.
func (r *UserWriteRepository) UpdateCoverImage(ctx context.Context, userID uuid.UUID, url string) (*models.UserDB, error) {
	const query = `UPDATE users SET cover_image = $2, updated_at = NOW()
		WHERE user_id = $1 RETURNING ` + userColumns
	return r.update(ctx, query, userID, url)
}
