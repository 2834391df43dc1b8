// Package db provides database interfaces and implementations for the intake service.
// It defines three main interfaces:
// - ProductManager: Handles product records and the token-keyed registration lifecycle
// - DirectoryManager: Manages sectors, users, and service requests
// - ConnectionManager: Manages database connections
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/intakesrv/db/dbmanager"
	"github.com/veroshealth/intake/internal/intakesrv/db/models"
	"github.com/veroshealth/intake/internal/intakesrv/db/postgresql"
)

// The managers are separately initialized to allow for wrapping each interface
// separately. This is particularly useful for caching or instrumentation.

// ProductManager handles product record operations. The continuation token is
// the only lookup key for pending records; all operations require a valid
// context and may return apperrors.Error for various failure cases.
type ProductManager interface {
	CreateProduct(ctx context.Context, product *models.Product) apperrors.Error
	GetProductByToken(ctx context.Context, token string) (*models.Product, apperrors.Error)
	UpdateProductByToken(ctx context.Context, product *models.Product) apperrors.Error
	ListProducts(ctx context.Context) ([]*models.Product, apperrors.Error)
	DeleteProductByToken(ctx context.Context, token string) apperrors.Error
}

// DirectoryManager handles the organizational collaborators: sectors, users,
// and service requests. These tables are not linked to products by foreign key.
type DirectoryManager interface {
	// Sector
	CreateSector(ctx context.Context, sector *models.Sector) apperrors.Error
	ListSectors(ctx context.Context) ([]*models.Sector, apperrors.Error)
	DeleteSector(ctx context.Context, id int64) apperrors.Error

	// User
	CreateUser(ctx context.Context, user *models.User) apperrors.Error
	ListUsers(ctx context.Context) ([]*models.User, apperrors.Error)
	GetUserByLogin(ctx context.Context, username, email string) (*models.User, apperrors.Error)
	DeleteUser(ctx context.Context, id int64) apperrors.Error

	// ServiceRequest
	CreateServiceRequest(ctx context.Context, req *models.ServiceRequest) apperrors.Error
	ListServiceRequests(ctx context.Context) ([]*models.ServiceRequest, apperrors.Error)
	DeleteServiceRequest(ctx context.Context, id int64) apperrors.Error
}

// ConnectionManager handles database connection lifetime.
type ConnectionManager interface {
	// Close the connection to the database.
	Close(ctx context.Context)
}

// Database interface combines all three managers into a single interface.
// This allows for a unified database access layer while maintaining separation of concerns.
type Database interface {
	ProductManager
	DirectoryManager
	ConnectionManager
}

var pool dbmanager.Pool

// Init initializes the database connection pool.
// It panics if the pool cannot be created; the service cannot run without it.
func Init() {
	ctx := log.Logger.WithContext(context.Background())
	pg := dbmanager.NewPool(ctx, "postgresql")
	if pg == nil {
		panic("unable to create db pool")
	}
	pool = pg
}

// Conn returns a new database connection from the pool.
// Returns an error if the connection cannot be established.
func Conn(ctx context.Context) (dbmanager.PooledConn, error) {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return nil, err
	}
	return nil, fmt.Errorf("database pool not initialized")
}

// Stats returns the pool's connection request and return counters.
func Stats() (requests, returns uint64) {
	if pool == nil {
		return 0, 0
	}
	return pool.Stats()
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "VerosIntakeDb"

// ConnCtx adds a database connection to the context.
// Returns an error if the connection cannot be established.
func ConnCtx(ctx context.Context) (context.Context, error) {
	conn, err := Conn(ctx)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, ctxDbKey, conn), nil
}

type verosIntakeDb struct {
	ProductManager
	DirectoryManager
	ConnectionManager
}

// DB returns a new database instance from the context.
// It expects a valid database connection in the context.
// Returns nil if no connection is found in the context.
func DB(ctx context.Context) Database {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.PooledConn); ok {
		pm, dm, cm := postgresql.NewIntakeDb(conn)
		return &verosIntakeDb{
			ProductManager:    pm,
			DirectoryManager:  dm,
			ConnectionManager: cm,
		}
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
