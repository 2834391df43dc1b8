package postgresql

import (
	"context"
	"database/sql"

	"github.com/veroshealth/intake/internal/intakesrv/db/dbmanager"
)

// Product Manager
type productManager struct {
	c dbmanager.PooledConn
}

func (pm *productManager) conn() *sql.Conn {
	return pm.c.Conn()
}

func newProductManager(c dbmanager.PooledConn) *productManager {
	return &productManager{c: c}
}

// Directory Manager
type directoryManager struct {
	c dbmanager.PooledConn
}

func (dm *directoryManager) conn() *sql.Conn {
	return dm.c.Conn()
}

func newDirectoryManager(c dbmanager.PooledConn) *directoryManager {
	return &directoryManager{c: c}
}

// Connection Manager
type connectionManager struct {
	c dbmanager.PooledConn
}

func newConnectionManager(c dbmanager.PooledConn) *connectionManager {
	return &connectionManager{c: c}
}

func (cm *connectionManager) Close(ctx context.Context) {
	cm.c.Close(ctx)
}
