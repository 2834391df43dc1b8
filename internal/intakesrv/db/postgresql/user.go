package postgresql

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

func (dm *directoryManager) CreateUser(ctx context.Context, user *models.User) apperrors.Error {
	if err := user.Validate(); err != nil {
		return dberror.ErrInvalidInput.Err(err)
	}

	query := `
		INSERT INTO users (name, email, username, setor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	errDb := dm.conn().QueryRowContext(ctx, query,
		user.Name, user.Email, user.Username, user.SetorID).
		Scan(&user.ID, &user.CreatedAt)

	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to create user")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

func (dm *directoryManager) ListUsers(ctx context.Context) ([]*models.User, apperrors.Error) {
	query := `
		SELECT id, name, email, username, setor_id, created_at
		FROM users
		ORDER BY name`

	rows, errDb := dm.conn().QueryContext(ctx, query)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to list users")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.SetorID, &u.CreatedAt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan user row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		users = append(users, u)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to read user rows")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return users, nil
}

// GetUserByLogin resolves a user by username and email pair. Both values must
// match the same row.
func (dm *directoryManager) GetUserByLogin(ctx context.Context, username, email string) (*models.User, apperrors.Error) {
	if username == "" || email == "" {
		return nil, dberror.ErrInvalidInput.Msg("username and email are required")
	}

	query := `
		SELECT id, name, email, username, setor_id, created_at
		FROM users
		WHERE username = $1 AND email = $2`

	u := &models.User{}
	errDb := dm.conn().QueryRowContext(ctx, query, username, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.SetorID, &u.CreatedAt)

	if errDb != nil {
		if errDb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("username", username).Msg("user not found")
			return nil, dberror.ErrNotFound.Msg("user not found")
		}
		log.Ctx(ctx).Error().Err(errDb).Str("username", username).Msg("failed to get user")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return u, nil
}

func (dm *directoryManager) DeleteUser(ctx context.Context, id int64) apperrors.Error {
	query := `
		DELETE FROM users
		WHERE id = $1`

	_, errDb := dm.conn().ExecContext(ctx, query, id)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Int64("user_id", id).Msg("failed to delete user")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}
