package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// ProfilePatch carries the optional fields of a partial profile update.
// Nil fields are left untouched.
type ProfilePatch struct {
	Name              *string
	Bio               *string
	Location          *string
	RavelryUsername   *string
	PreferredCrafts   *Craft
	SkillLevel        *SkillLevel
	ProfileVisibility *Visibility
}

// Repository defines persistence operations for the auth module.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const userColumns = `id, email, name, password_hash, avatar_url, bio, location, ravelry_username, preferred_crafts, skill_level, profile_visibility, created_at, updated_at`

// Create persists a new user. A unique-constraint violation on email maps to
// shared.ErrEmailTaken so concurrent registrations lose cleanly.
func (r *PGRepository) Create(ctx context.Context, user *User) error {
	const query = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash,
		user.AvatarURL, user.Bio, user.Location, user.RavelryUsername,
		user.PreferredCrafts, user.SkillLevel, user.ProfileVisibility,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shared.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail fetches a user by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// FindByID fetches a user by id.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// UpdateProfile applies only the provided fields and returns the merged record.
func (r *PGRepository) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*User, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 0

	add := func(column string, value interface{}) {
		argCount++
		sets = append(sets, column+" = $"+strconv.Itoa(argCount))
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Bio != nil {
		add("bio", *patch.Bio)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.RavelryUsername != nil {
		add("ravelry_username", *patch.RavelryUsername)
	}
	if patch.PreferredCrafts != nil {
		add("preferred_crafts", *patch.PreferredCrafts)
	}
	if patch.SkillLevel != nil {
		add("skill_level", *patch.SkillLevel)
	}
	if patch.ProfileVisibility != nil {
		add("profile_visibility", *patch.ProfileVisibility)
	}
	add("updated_at", time.Now().UTC())

	argCount++
	args = append(args, id)
	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(argCount) + ` RETURNING ` + userColumns

	return r.scanUser(r.pool.QueryRow(ctx, query, args...))
}

func (r *PGRepository) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.AvatarURL, &user.Bio, &user.Location, &user.RavelryUsername,
		&user.PreferredCrafts, &user.SkillLevel, &user.ProfileVisibility,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

var _ Repository = (*PGRepository)(nil)
