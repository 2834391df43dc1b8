package config

import (
	srvconfig "github.com/veroshealth/intake/internal/intakesrv/config"
)

// IntakeDSN returns the connection string for the intake database.
func IntakeDSN() string {
	return srvconfig.IntakeDSN()
}
