package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/intakecommon"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.TestInit()

	user := &intakecommon.UserContext{
		Username: "jpereira",
		Email:    "joao.pereira@veroshealth.com",
	}

	token, err := newSessionToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := parseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, parsed.Username)
	assert.Equal(t, user.Email, parsed.Email)
}

func TestSessionTokenTampered(t *testing.T) {
	config.TestInit()

	user := &intakecommon.UserContext{Username: "preis", Email: "paula.reis@veroshealth.com"}
	token, err := newSessionToken(user)
	require.NoError(t, err)

	_, err = parseSessionToken(token + "x")
	assert.Error(t, err)

	_, err = parseSessionToken("not-a-token")
	assert.Error(t, err)
}
