package postgresql

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

func (dm *directoryManager) CreateServiceRequest(ctx context.Context, req *models.ServiceRequest) apperrors.Error {
	if err := req.Validate(); err != nil {
		return dberror.ErrInvalidInput.Err(err)
	}

	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}

	query := `
		INSERT INTO solicitacoes (usuario, descricao, status)
		VALUES ($1, $2, $3)
		RETURNING id, data_solicitacao`

	errDb := dm.conn().QueryRowContext(ctx, query,
		req.Usuario, req.Descricao, req.Status).
		Scan(&req.ID, &req.DataSolicitacao)

	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to create service request")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

func (dm *directoryManager) ListServiceRequests(ctx context.Context) ([]*models.ServiceRequest, apperrors.Error) {
	query := `
		SELECT id, usuario, descricao, data_solicitacao, status
		FROM solicitacoes
		ORDER BY data_solicitacao DESC`

	rows, errDb := dm.conn().QueryContext(ctx, query)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to list service requests")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var reqs []*models.ServiceRequest
	for rows.Next() {
		r := &models.ServiceRequest{}
		if err := rows.Scan(&r.ID, &r.Usuario, &r.Descricao, &r.DataSolicitacao, &r.Status); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan service request row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		reqs = append(reqs, r)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to read service request rows")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return reqs, nil
}

func (dm *directoryManager) DeleteServiceRequest(ctx context.Context, id int64) apperrors.Error {
	query := `
		DELETE FROM solicitacoes
		WHERE id = $1`

	_, errDb := dm.conn().ExecContext(ctx, query, id)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Int64("request_id", id).Msg("failed to delete service request")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}
