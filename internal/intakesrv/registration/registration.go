// Package registration implements the two-phase product registration
// workflow. A submission creates a provisional record and mints a
// continuation token; the token is delivered to a reviewer out-of-band, who
// retrieves the record with it and submits the finalization that completes
// the record. The token is the only lookup key between the two phases.
package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/common/uuid"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/db"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
	"github.com/veroshealth/intake/internal/intakesrv/notify"
)

// Begin creates a provisional product record from the submission and mints
// its continuation token. Nothing beyond shape is validated here. On success
// the reviewer is notified asynchronously with a link embedding the token;
// notification outcome never affects the result. An entropy failure while
// minting the token fails the call outright.
func Begin(ctx context.Context, req *BeginRequest) (string, apperrors.Error) {
	token, err := uuid.NewToken()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to generate continuation token")
		return "", ErrTokenGeneration.Err(err)
	}

	product := productFromFields(&req.ProductFields)
	product.Token = token

	atendimento, err := models.AttendanceFromSelector(req.TipoAtendimento).ToJSONB()
	if err != nil {
		return "", ErrPersistence.Err(err)
	}
	product.Atendimento = atendimento

	if dbErr := db.DB(ctx).CreateProduct(ctx, product); dbErr != nil {
		log.Ctx(ctx).Error().Err(dbErr).Msg("failed to create pending product")
		return "", ErrPersistence.Err(dbErr)
	}

	notifyPending(ctx, product)

	return token, nil
}

// Resume retrieves the provisional record for a continuation token and
// reconstructs its attendance facets. Side-effect-free; callable any number
// of times while the record is pending.
func Resume(ctx context.Context, token string) (*Record, apperrors.Error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	product, dbErr := db.DB(ctx).GetProductByToken(ctx, token)
	if dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrPersistence.Err(dbErr)
	}

	return recordFromProduct(ctx, product)
}

// Finalize validates the required fields and overwrites the record matching
// the token. Required-field policy is enforced only here: codigo, descricao,
// and desc_resumida must all be present. The token is never invalidated, so
// a repeat finalize on the same token overwrites again; callers holding the
// link are trusted the way the paper process they replaced was.
func Finalize(ctx context.Context, req *FinalizeRequest) apperrors.Error {
	if req.Token == "" {
		return ErrMissingToken
	}

	if err := validate.Struct(req); err != nil {
		verr := ErrValidation
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				verr = verr.Msg(fmt.Sprintf("%s is required", fe.Field()))
			}
		}
		return verr
	}

	product := productFromFields(&req.ProductFields)
	product.Token = req.Token

	atendimento, err := models.AttendanceFromSelector(req.TipoAtendimento).ToJSONB()
	if err != nil {
		return ErrPersistence.Err(err)
	}
	product.Atendimento = atendimento

	if dbErr := db.DB(ctx).UpdateProductByToken(ctx, product); dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) {
			return ErrNotFound
		}
		log.Ctx(ctx).Error().Err(dbErr).Msg("failed to finalize product")
		return ErrPersistence.Err(dbErr)
	}

	notifyFinalized(ctx, product)

	return nil
}

// List returns every product record.
func List(ctx context.Context) ([]*Record, apperrors.Error) {
	products, dbErr := db.DB(ctx).ListProducts(ctx)
	if dbErr != nil {
		return nil, ErrPersistence.Err(dbErr)
	}

	records := make([]*Record, 0, len(products))
	for _, p := range products {
		r, err := recordFromProduct(ctx, p)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func productFromFields(f *ProductFields) *models.Product {
	return &models.Product{
		Codigo:                  f.Codigo,
		Descricao:               f.Descricao,
		DescResumida:            f.DescResumida,
		Kit:                     f.Kit,
		Consignado:              f.Consignado,
		Opme:                    f.Opme,
		Especie:                 f.Especie,
		Classe:                  f.Classe,
		SubClasse:               f.SubClasse,
		CurvaABC:                f.CurvaABC,
		Lote:                    f.Lote,
		Serie:                   f.Serie,
		RegistroAnvisa:          f.RegistroAnvisa,
		Etiqueta:                f.Etiqueta,
		Medicamento:             f.Medicamento,
		Carater:                 f.Carater,
		Atividade:               f.Atividade,
		ProcedimentoFaturamento: f.ProcedimentoFaturamento,
		AutoCusto:               f.AutoCusto,
		Aplicacao:               f.Aplicacao,
		Valor:                   f.Valor,
		Repasse:                 f.Repasse,
		Observacao:              f.Observacao,
	}
}

func recordFromProduct(ctx context.Context, p *models.Product) (*Record, apperrors.Error) {
	facets, err := models.AttendanceFromJSONB(p.Atendimento)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("product_id", p.ID).Msg("failed to parse stored attendance facets")
		return nil, ErrPersistence.Err(err)
	}

	return &Record{
		ID:    p.ID,
		Token: p.Token,
		ProductFields: ProductFields{
			Codigo:                  p.Codigo,
			Descricao:               p.Descricao,
			DescResumida:            p.DescResumida,
			Kit:                     p.Kit,
			Consignado:              p.Consignado,
			Opme:                    p.Opme,
			Especie:                 p.Especie,
			Classe:                  p.Classe,
			SubClasse:               p.SubClasse,
			CurvaABC:                p.CurvaABC,
			Lote:                    p.Lote,
			Serie:                   p.Serie,
			RegistroAnvisa:          p.RegistroAnvisa,
			Etiqueta:                p.Etiqueta,
			Medicamento:             p.Medicamento,
			Carater:                 p.Carater,
			Atividade:               p.Atividade,
			ProcedimentoFaturamento: p.ProcedimentoFaturamento,
			AutoCusto:               p.AutoCusto,
			Aplicacao:               p.Aplicacao,
			Valor:                   p.Valor,
			Repasse:                 p.Repasse,
			TipoAtendimento:         facets.Selector(),
			Observacao:              p.Observacao,
		},
		Atendimento: facets,
	}, nil
}

func notifyPending(ctx context.Context, product *models.Product) {
	cfg := config.Config()
	link := fmt.Sprintf("%s/products/pending?token=%s", cfg.Notify.PublicURL, product.Token)
	body := fmt.Sprintf(
		"Um novo produto aguarda finalizacao de cadastro.\n\nCodigo: %s\nDescricao: %s\n\nContinue o cadastro em: %s\n",
		product.Codigo, product.Descricao, link)

	notify.Enqueue(ctx, notify.Message{
		From:    cfg.Notify.FromAddress,
		To:      cfg.Notify.ReviewerAddr,
		Subject: "Novo produto pendente de cadastro",
		Body:    body,
	})
}

func notifyFinalized(ctx context.Context, product *models.Product) {
	cfg := config.Config()
	body := fmt.Sprintf(
		"O cadastro do produto foi finalizado.\n\nCodigo: %s\nDescricao: %s\nObservacao: %s\n",
		product.Codigo, product.Descricao, product.Observacao)

	notify.Enqueue(ctx, notify.Message{
		From:    cfg.Notify.FromAddress,
		To:      cfg.Notify.ReviewerAddr,
		Subject: "Cadastro de produto finalizado",
		Body:    body,
	})
}
