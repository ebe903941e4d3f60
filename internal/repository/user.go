package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/astroguide/astroguide-go/internal/astro"
	"github.com/astroguide/astroguide-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository handles user profile persistence. Birth dates are stored as
// ISO-8601 strings and the zodiac sign column is kept consistent with the
// birth date on every write.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, name, birth_date, birth_time, birth_place, zodiac_sign, password_hash, created_at`

// Create inserts a new user profile. The caller supplies the ID and the
// derived zodiac sign; a taken email fails with ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, email, name, birth_date, birth_time, birth_place, zodiac_sign, password_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name,
		user.BirthDate, user.BirthTime, user.BirthPlace,
		user.ZodiacSign, user.PasswordHash,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// GetByEmail retrieves a user profile by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetByID retrieves a user profile by identifier.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepository) getOne(ctx context.Context, query, arg string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Name,
		&user.BirthDate, &user.BirthTime, &user.BirthPlace,
		&user.ZodiacSign, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Update merges only the provided fields into the stored profile. When the
// birth date is among them the zodiac sign is re-derived so the stored sign
// never drifts from the stored date. An update with no fields is a no-op.
func (r *UserRepository) Update(ctx context.Context, id string, upd model.UserUpdate) error {
	var sets []string
	var args []any

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.BirthDate != nil {
		sign, err := astro.SignForDate(*upd.BirthDate)
		if err != nil {
			return err
		}
		sets = append(sets, "birth_date = ?", "zodiac_sign = ?")
		args = append(args, *upd.BirthDate, sign)
	}
	if upd.BirthTime != nil {
		sets = append(sets, "birth_time = ?")
		args = append(args, *upd.BirthTime)
	}
	if upd.BirthPlace != nil {
		sets = append(sets, "birth_place = ?")
		args = append(args, *upd.BirthPlace)
	}

	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// MySQL reports 0 rows when the values match the stored ones, so
		// confirm the user actually exists before reporting absence.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
