package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veroshealth/intake/internal/common/uuid"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

func TestCreateProduct(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	token, err := uuid.NewToken()
	require.NoError(t, err)

	atendimento, err := models.AttendanceFromSelector("ambulatorio").ToJSONB()
	require.NoError(t, err)

	product := &models.Product{
		Codigo:      "A1",
		Descricao:   "Dipirona 500mg",
		Token:       token,
		Atendimento: atendimento,
	}

	// Test successful creation
	errDb := DB(ctx).CreateProduct(ctx, product)
	assert.NoError(t, errDb)
	defer DB(ctx).DeleteProductByToken(ctx, token)

	assert.NotZero(t, product.ID)
	assert.NotZero(t, product.CreatedAt)
	assert.NotZero(t, product.UpdatedAt)

	// Test creation without a token
	errDb = DB(ctx).CreateProduct(ctx, &models.Product{Codigo: "A2"})
	assert.Error(t, errDb)
	assert.ErrorIs(t, errDb, dberror.ErrInvalidInput)
}

func TestGetProductByToken(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	token, err := uuid.NewToken()
	require.NoError(t, err)

	atendimento, err := models.AttendanceFromSelector("internacao").ToJSONB()
	require.NoError(t, err)

	product := &models.Product{
		Codigo:       "B7",
		Descricao:    "Soro fisiologico 0,9%",
		DescResumida: "Soro 0,9%",
		Valor:        12.75,
		Token:        token,
		Atendimento:  atendimento,
	}
	errDb := DB(ctx).CreateProduct(ctx, product)
	require.NoError(t, errDb)
	defer DB(ctx).DeleteProductByToken(ctx, token)

	// Test successful retrieval
	retrieved, errDb := DB(ctx).GetProductByToken(ctx, token)
	assert.NoError(t, errDb)
	require.NotNil(t, retrieved)
	assert.Equal(t, product.ID, retrieved.ID)
	assert.Equal(t, product.Codigo, retrieved.Codigo)
	assert.Equal(t, product.Descricao, retrieved.Descricao)
	assert.Equal(t, product.Valor, retrieved.Valor)

	// The stored facet blob parses back to the same facet set
	facets, err := models.AttendanceFromJSONB(retrieved.Atendimento)
	require.NoError(t, err)
	assert.True(t, facets.Internacao)
	assert.False(t, facets.Ambulatorio)

	// Test retrieval of a token never issued
	unknown, err := uuid.NewToken()
	require.NoError(t, err)
	retrieved, errDb = DB(ctx).GetProductByToken(ctx, unknown)
	assert.Error(t, errDb)
	assert.Nil(t, retrieved)
	assert.ErrorIs(t, errDb, dberror.ErrNotFound)

	// Test retrieval with an empty token
	_, errDb = DB(ctx).GetProductByToken(ctx, "")
	assert.Error(t, errDb)
	assert.ErrorIs(t, errDb, dberror.ErrMissingToken)
}

func TestUpdateProductByToken(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	token, err := uuid.NewToken()
	require.NoError(t, err)

	atendimento, err := models.AttendanceFromSelector("ambulatorio").ToJSONB()
	require.NoError(t, err)

	product := &models.Product{
		Codigo:      "C3",
		Descricao:   "Atadura crepom",
		Token:       token,
		Atendimento: atendimento,
	}
	errDb := DB(ctx).CreateProduct(ctx, product)
	require.NoError(t, errDb)
	defer DB(ctx).DeleteProductByToken(ctx, token)

	// Overwrite descriptive fields and the facet blob
	updated, err := models.AttendanceFromSelector("internacao").ToJSONB()
	require.NoError(t, err)
	product.Descricao = "Atadura crepom 10cm"
	product.DescResumida = "Atadura 10cm"
	product.Valor = 4.2
	product.Atendimento = updated

	errDb = DB(ctx).UpdateProductByToken(ctx, product)
	assert.NoError(t, errDb)

	retrieved, errDb := DB(ctx).GetProductByToken(ctx, token)
	assert.NoError(t, errDb)
	require.NotNil(t, retrieved)
	assert.Equal(t, "Atadura crepom 10cm", retrieved.Descricao)
	assert.Equal(t, "Atadura 10cm", retrieved.DescResumida)
	assert.Equal(t, 4.2, retrieved.Valor)

	facets, err := models.AttendanceFromJSONB(retrieved.Atendimento)
	require.NoError(t, err)
	assert.True(t, facets.Internacao)
	assert.False(t, facets.Ambulatorio)

	// Test update of a token never issued
	unknown, err := uuid.NewToken()
	require.NoError(t, err)
	product.Token = unknown
	errDb = DB(ctx).UpdateProductByToken(ctx, product)
	assert.Error(t, errDb)
	assert.ErrorIs(t, errDb, dberror.ErrNotFound)

	// Test update with an empty token
	product.Token = ""
	errDb = DB(ctx).UpdateProductByToken(ctx, product)
	assert.Error(t, errDb)
	assert.ErrorIs(t, errDb, dberror.ErrMissingToken)
}

func TestTokenCollision(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	token, err := uuid.NewToken()
	require.NoError(t, err)

	// Two rows sharing one token: the store must never resolve the token to
	// either of them.
	first := &models.Product{Codigo: "X1", Descricao: "Primeiro", Token: token}
	second := &models.Product{Codigo: "X2", Descricao: "Segundo", Token: token}
	require.NoError(t, DB(ctx).CreateProduct(ctx, first))
	defer DB(ctx).DeleteProductByToken(ctx, token)
	require.NoError(t, DB(ctx).CreateProduct(ctx, second))

	// A colliding token reads as not found, never a silently picked row
	retrieved, errDb := DB(ctx).GetProductByToken(ctx, token)
	assert.Error(t, errDb)
	assert.Nil(t, retrieved)
	assert.ErrorIs(t, errDb, dberror.ErrNotFound)

	// A colliding token rolls the update back
	errDb = DB(ctx).UpdateProductByToken(ctx, &models.Product{
		Codigo:    "X9",
		Descricao: "Sobrescrito",
		Token:     token,
	})
	assert.Error(t, errDb)
	assert.ErrorIs(t, errDb, dberror.ErrAmbiguousToken)

	// Neither row was touched by the rolled-back write
	products, errDb := DB(ctx).ListProducts(ctx)
	require.NoError(t, errDb)
	matched := 0
	for _, p := range products {
		if p.Token == token {
			matched++
			assert.NotEqual(t, "Sobrescrito", p.Descricao)
		}
	}
	assert.Equal(t, 2, matched)
}

func TestListProducts(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	var tokens []string
	for _, codigo := range []string{"L1", "L2", "L3"} {
		token, err := uuid.NewToken()
		require.NoError(t, err)
		tokens = append(tokens, token)
		errDb := DB(ctx).CreateProduct(ctx, &models.Product{Codigo: codigo, Token: token})
		require.NoError(t, errDb)
	}
	defer func() {
		for _, token := range tokens {
			DB(ctx).DeleteProductByToken(ctx, token)
		}
	}()

	products, errDb := DB(ctx).ListProducts(ctx)
	assert.NoError(t, errDb)
	assert.GreaterOrEqual(t, len(products), 3)

	// Newest first
	assert.Equal(t, "L3", products[0].Codigo)
	assert.Equal(t, "L2", products[1].Codigo)
	assert.Equal(t, "L1", products[2].Codigo)
}

func newDb(c ...context.Context) context.Context {
	config.TestInit()
	Init()
	var ctx context.Context
	var err error
	if len(c) > 0 {
		ctx, err = ConnCtx(c[0])
		if err != nil {
			log.Ctx(ctx).Fatal().Err(err).Msg("unable to get db connection")
		}
	} else {
		ctx, err = ConnCtx(context.Background())
		if err != nil {
			log.Ctx(ctx).Fatal().Err(err).Msg("unable to get db connection")
		}
	}
	return ctx
}
