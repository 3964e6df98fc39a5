package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

const userColumns = `user_id, email, password_hash, name, role, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(ctx, query, []any{email}, user.UserID, err)

	if err = noRows(err); err != nil || user.UserID == uuid.Nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)
	logQuery(ctx, query, []any{userID}, user.UserID, err)

	if err = noRows(err); err != nil || user.UserID == uuid.Nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole returns all users with the given role, oldest first.
func (r *UserReadRepository) ListByRole(ctx context.Context, role string) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at, user_id`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, role)
	logQuery(ctx, query, []any{role}, len(users), err)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and fills in its id and timestamps.
// A duplicate email yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (user_id, email, password_hash, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}
	args := []any{user.UserID, user.Email, user.PasswordHash, user.Name, user.Role}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), user, query, args...)
	// never log the password hash
	logQuery(ctx, query, []any{user.UserID, user.Email, user.Name, user.Role}, user.UserID, err)

	return classify(err)
}

// Update overwrites the name and password hash of a user and returns the stored row.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, name, passwordHash string) (*models.UserDB, error) {
	query := `
		UPDATE users SET name = $2, password_hash = $3, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID, name, passwordHash)
	logQuery(ctx, query, []any{userID, name}, user.UserID, err)

	if err = noRows(err); err != nil || user.UserID == uuid.Nil {
		return nil, err
	}
	return &user, nil
}
