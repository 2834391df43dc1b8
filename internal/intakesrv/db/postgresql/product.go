package postgresql

import (
	"context"

	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

const productColumns = `
	id, codigo, descricao, desc_resumida, kit, consignado, opme, especie,
	classe, sub_classe, curva_abc, lote, serie, registro_anvisa, etiqueta,
	medicamento, carater, atividade, procedimento_faturamento, token,
	auto_custo, aplicacao, valor, repasse, tipo_atendimento, observacao,
	created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Descricao, &p.DescResumida, &p.Kit, &p.Consignado,
		&p.Opme, &p.Especie, &p.Classe, &p.SubClasse, &p.CurvaABC, &p.Lote,
		&p.Serie, &p.RegistroAnvisa, &p.Etiqueta, &p.Medicamento, &p.Carater,
		&p.Atividade, &p.ProcedimentoFaturamento, &p.Token, &p.AutoCusto,
		&p.Aplicacao, &p.Valor, &p.Repasse, &p.Atendimento, &p.Observacao,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProduct inserts a new pending product record. Optional fields are
// stored as given; required-field policy is enforced by the registration
// workflow at finalize time, not here.
func (pm *productManager) CreateProduct(ctx context.Context, product *models.Product) apperrors.Error {
	if err := product.Validate(); err != nil {
		return dberror.ErrInvalidInput.Err(err)
	}
	if product.Atendimento.Status == pgtype.Undefined {
		product.Atendimento.Status = pgtype.Null
	}

	query := `
		INSERT INTO produtos (
			codigo, descricao, desc_resumida, kit, consignado, opme, especie,
			classe, sub_classe, curva_abc, lote, serie, registro_anvisa, etiqueta,
			medicamento, carater, atividade, procedimento_faturamento, token,
			auto_custo, aplicacao, valor, repasse, tipo_atendimento, observacao
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		RETURNING id, created_at, updated_at`

	errDb := pm.conn().QueryRowContext(ctx, query,
		product.Codigo, product.Descricao, product.DescResumida, product.Kit,
		product.Consignado, product.Opme, product.Especie, product.Classe,
		product.SubClasse, product.CurvaABC, product.Lote, product.Serie,
		product.RegistroAnvisa, product.Etiqueta, product.Medicamento,
		product.Carater, product.Atividade, product.ProcedimentoFaturamento,
		product.Token, product.AutoCusto, product.Aplicacao, product.Valor,
		product.Repasse, product.Atendimento, product.Observacao).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to create product")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

// GetProductByToken looks up a product by its continuation token. Exact match
// only. A token matching more than one row never silently picks one; the
// lookup is reported as not found and the collision is logged.
func (pm *productManager) GetProductByToken(ctx context.Context, token string) (*models.Product, apperrors.Error) {
	if token == "" {
		return nil, dberror.ErrMissingToken
	}

	query := `
		SELECT` + productColumns + `
		FROM produtos
		WHERE token = $1
		LIMIT 2`

	rows, errDb := pm.conn().QueryContext(ctx, query, token)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to query product by token")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan product row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		products = append(products, p)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to read product rows")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	switch len(products) {
	case 0:
		log.Ctx(ctx).Info().Msg("pending product not found for token")
		return nil, dberror.ErrNotFound.Msg("pending product not found")
	case 1:
		return products[0], nil
	default:
		log.Ctx(ctx).Error().Msg("token matched multiple products")
		return nil, dberror.ErrNotFound.Msg("pending product not found")
	}
}

// UpdateProductByToken overwrites all descriptive fields and the attendance
// blob for the row matching the token. The write runs in a transaction and is
// rolled back if it would touch more than one row, so a token collision can
// never fan a single update out across records.
func (pm *productManager) UpdateProductByToken(ctx context.Context, product *models.Product) apperrors.Error {
	if product.Token == "" {
		return dberror.ErrMissingToken
	}
	if product.Atendimento.Status == pgtype.Undefined {
		product.Atendimento.Status = pgtype.Null
	}

	tx, errDb := pm.conn().BeginTx(ctx, nil)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to begin transaction")
		return dberror.ErrDatabase.Err(errDb)
	}
	defer tx.Rollback()

	query := `
		UPDATE produtos
		SET
			codigo = $1, descricao = $2, desc_resumida = $3, kit = $4,
			consignado = $5, opme = $6, especie = $7, classe = $8,
			sub_classe = $9, curva_abc = $10, lote = $11, serie = $12,
			registro_anvisa = $13, etiqueta = $14, medicamento = $15,
			carater = $16, atividade = $17, procedimento_faturamento = $18,
			auto_custo = $19, aplicacao = $20, valor = $21, repasse = $22,
			tipo_atendimento = $23, observacao = $24, updated_at = now()
		WHERE token = $25`

	result, errDb := tx.ExecContext(ctx, query,
		product.Codigo, product.Descricao, product.DescResumida, product.Kit,
		product.Consignado, product.Opme, product.Especie, product.Classe,
		product.SubClasse, product.CurvaABC, product.Lote, product.Serie,
		product.RegistroAnvisa, product.Etiqueta, product.Medicamento,
		product.Carater, product.Atividade, product.ProcedimentoFaturamento,
		product.AutoCusto, product.Aplicacao, product.Valor, product.Repasse,
		product.Atendimento, product.Observacao, product.Token)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to update product by token")
		return dberror.ErrDatabase.Err(errDb)
	}

	rowsAffected, errDb := result.RowsAffected()
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to get rows affected")
		return dberror.ErrDatabase.Err(errDb)
	}

	if rowsAffected == 0 {
		log.Ctx(ctx).Info().Msg("pending product not found for token")
		return dberror.ErrNotFound.Msg("pending product not found")
	}
	if rowsAffected > 1 {
		log.Ctx(ctx).Error().Int64("rows", rowsAffected).Msg("token matched multiple products, rolling back")
		return dberror.ErrAmbiguousToken
	}

	if errDb := tx.Commit(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to commit product update")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

// DeleteProductByToken removes the record matching the token. Deleting a
// token with no match is not an error.
func (pm *productManager) DeleteProductByToken(ctx context.Context, token string) apperrors.Error {
	if token == "" {
		return dberror.ErrMissingToken
	}

	query := `
		DELETE FROM produtos
		WHERE token = $1`

	_, errDb := pm.conn().ExecContext(ctx, query, token)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to delete product by token")
		return dberror.ErrDatabase.Err(errDb)
	}

	return nil
}

// ListProducts returns all product records, newest first.
func (pm *productManager) ListProducts(ctx context.Context) ([]*models.Product, apperrors.Error) {
	query := `
		SELECT` + productColumns + `
		FROM produtos
		ORDER BY id DESC`

	rows, errDb := pm.conn().QueryContext(ctx, query)
	if errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to list products")
		return nil, dberror.ErrDatabase.Err(errDb)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan product row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		products = append(products, p)
	}
	if errDb := rows.Err(); errDb != nil {
		log.Ctx(ctx).Error().Err(errDb).Msg("failed to read product rows")
		return nil, dberror.ErrDatabase.Err(errDb)
	}

	return products, nil
}
