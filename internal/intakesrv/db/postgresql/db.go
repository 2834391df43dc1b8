// Description: This file contains the construction of the intake database managers for PostgreSQL.
package postgresql

import (
	"github.com/veroshealth/intake/internal/intakesrv/db/dbmanager"
)

type intakeDb struct {
	pm *productManager
	dm *directoryManager
	cm *connectionManager
}

func NewIntakeDb(c dbmanager.PooledConn) (*productManager, *directoryManager, *connectionManager) {
	h := &intakeDb{}
	h.pm = newProductManager(c)
	h.dm = newDirectoryManager(c)
	h.cm = newConnectionManager(c)
	return h.pm, h.dm, h.cm
}
