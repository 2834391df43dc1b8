package postgresql

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

func (dm *directoryManager) CreateSector(ctx context.Context, sector *models.Sector) apperrors.Error {
	if err := sector.Validate(); err != nil {
		return dberror.ErrInvalidInput.Err(err)
	}

	query := `
		INSERT INTO setores (nome, responsavel)
		VALUES ($1, $2)
		RETURNING id, created_at`

	errDb := dm.conn().QueryRowContext(ctx, query, sector.Nome, sector.Responsavel).
		Scan(&sector.ID, &sector.CreatedAt)

	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to create sector")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

func (dm *directoryManager) ListSectors(ctx context.Context) ([]*models.Sector, apperrors.Error) {
	query := `
		SELECT id, nome, responsavel, created_at
		FROM setores
		ORDER BY nome`

	rows, errDb := dm.conn().QueryContext(ctx, query)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to list sectors")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var sectors []*models.Sector
	for rows.Next() {
		s := &models.Sector{}
		if err := rows.Scan(&s.ID, &s.Nome, &s.Responsavel, &s.CreatedAt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan sector row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		sectors = append(sectors, s)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to read sector rows")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return sectors, nil
}

func (dm *directoryManager) DeleteSector(ctx context.Context, id int64) apperrors.Error {
	query := `
		DELETE FROM setores
		WHERE id = $1`

	_, errDb := dm.conn().ExecContext(ctx, query, id)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Int64("sector_id", id).Msg("failed to delete sector")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}
