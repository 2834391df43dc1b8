package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

func TestCreateSector(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	sector := &models.Sector{
		Nome:        "Farmacia Central",
		Responsavel: "Ana Souza",
	}

	err := DB(ctx).CreateSector(ctx, sector)
	assert.NoError(t, err)
	defer DB(ctx).DeleteSector(ctx, sector.ID)

	assert.NotZero(t, sector.ID)
	assert.NotZero(t, sector.CreatedAt)

	// Responsavel is optional: a nome-only sector is accepted
	nomeOnly := &models.Sector{Nome: "Sem Responsavel"}
	err = DB(ctx).CreateSector(ctx, nomeOnly)
	assert.NoError(t, err)
	defer DB(ctx).DeleteSector(ctx, nomeOnly.ID)
	assert.NotZero(t, nomeOnly.ID)

	// Test creation without a nome
	err = DB(ctx).CreateSector(ctx, &models.Sector{Responsavel: "Ana Souza"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestListSectors(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	sector := &models.Sector{
		Nome:        "Almoxarifado",
		Responsavel: "Carlos Lima",
	}
	err := DB(ctx).CreateSector(ctx, sector)
	require.NoError(t, err)
	defer DB(ctx).DeleteSector(ctx, sector.ID)

	sectors, err := DB(ctx).ListSectors(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, sectors)

	found := false
	for _, s := range sectors {
		if s.ID == sector.ID {
			found = true
			assert.Equal(t, sector.Nome, s.Nome)
			assert.Equal(t, sector.Responsavel, s.Responsavel)
		}
	}
	assert.True(t, found)
}

func TestCreateUser(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	sector := &models.Sector{
		Nome:        "Compras",
		Responsavel: "Marina Alves",
	}
	err := DB(ctx).CreateSector(ctx, sector)
	require.NoError(t, err)
	defer DB(ctx).DeleteSector(ctx, sector.ID)

	user := &models.User{
		Name:     "Joao Pereira",
		Email:    "joao.pereira@veroshealth.com",
		Username: "jpereira",
		SetorID:  sector.ID,
	}

	err = DB(ctx).CreateUser(ctx, user)
	assert.NoError(t, err)
	defer DB(ctx).DeleteUser(ctx, user.ID)

	assert.NotZero(t, user.ID)

	// Test creation with missing fields
	err = DB(ctx).CreateUser(ctx, &models.User{Name: "Sem Email"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestGetUserByLogin(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	sector := &models.Sector{
		Nome:        "Enfermagem",
		Responsavel: "Paula Reis",
	}
	err := DB(ctx).CreateSector(ctx, sector)
	require.NoError(t, err)
	defer DB(ctx).DeleteSector(ctx, sector.ID)

	user := &models.User{
		Name:     "Paula Reis",
		Email:    "paula.reis@veroshealth.com",
		Username: "preis",
		SetorID:  sector.ID,
	}
	err = DB(ctx).CreateUser(ctx, user)
	require.NoError(t, err)
	defer DB(ctx).DeleteUser(ctx, user.ID)

	// Test successful lookup
	retrieved, err := DB(ctx).GetUserByLogin(ctx, "preis", "paula.reis@veroshealth.com")
	assert.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Name, retrieved.Name)

	// Username and email must match the same row
	_, err = DB(ctx).GetUserByLogin(ctx, "preis", "someone.else@veroshealth.com")
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	// Missing credentials
	_, err = DB(ctx).GetUserByLogin(ctx, "", "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestCreateServiceRequest(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	req := &models.ServiceRequest{
		Usuario:   "jpereira",
		Descricao: "Cadastro de novo fornecedor",
	}

	err := DB(ctx).CreateServiceRequest(ctx, req)
	assert.NoError(t, err)
	defer DB(ctx).DeleteServiceRequest(ctx, req.ID)

	assert.NotZero(t, req.ID)
	assert.NotZero(t, req.DataSolicitacao)
	assert.Equal(t, models.RequestStatusPending, req.Status)

	// Test creation with missing fields
	err = DB(ctx).CreateServiceRequest(ctx, &models.ServiceRequest{Usuario: "jpereira"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestListServiceRequests(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	req := &models.ServiceRequest{
		Usuario:   "preis",
		Descricao: "Revisao de estoque minimo",
	}
	err := DB(ctx).CreateServiceRequest(ctx, req)
	require.NoError(t, err)
	defer DB(ctx).DeleteServiceRequest(ctx, req.ID)

	reqs, err := DB(ctx).ListServiceRequests(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, reqs)

	found := false
	for _, r := range reqs {
		if r.ID == req.ID {
			found = true
			assert.Equal(t, req.Descricao, r.Descricao)
			assert.Equal(t, models.RequestStatusPending, r.Status)
		}
	}
	assert.True(t, found)
}
