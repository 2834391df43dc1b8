package apis

import (
	"net/http"

	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/intakesrv/db"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

type sectorRequest struct {
	Nome        string `json:"nome"`
	Responsavel string `json:"responsavel"`
}

func createSector(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &sectorRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	sector := &models.Sector{
		Nome:        req.Nome,
		Responsavel: req.Responsavel,
	}
	if err := db.DB(ctx).CreateSector(ctx, sector); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   sector,
	}, nil
}

func listSectors(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	sectors, err := db.DB(ctx).ListSectors(ctx)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   sectors,
	}, nil
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	SetorID  int64  `json:"setor_id"`
}

func createUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &userRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		SetorID:  req.SetorID,
	}
	if err := db.DB(ctx).CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   user,
	}, nil
}

func listUsers(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	users, err := db.DB(ctx).ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   users,
	}, nil
}

type serviceRequestRequest struct {
	Usuario   string `json:"usuario"`
	Descricao string `json:"descricao"`
}

func createServiceRequest(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &serviceRequestRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	sr := &models.ServiceRequest{
		Usuario:   req.Usuario,
		Descricao: req.Descricao,
	}
	if err := db.DB(ctx).CreateServiceRequest(ctx, sr); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   sr,
	}, nil
}

func listServiceRequests(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	reqs, err := db.DB(ctx).ListServiceRequests(ctx)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   reqs,
	}, nil
}
