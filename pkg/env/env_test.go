package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/pkg/env"
)

func TestParse_Returns(t *testing.T) {
	t.Setenv("TEST_PORT", "3001")

	port, err := env.Parse[int]("TEST_PORT")
	require.NoError(t, err)
	assert.Equal(t, 3001, port)

	_, err = env.Parse[int]("TEST_MISSING_PORT")
	assert.Error(t, err)
}

func TestParse_InvalidValue_ReturnsError(t *testing.T) {
	t.Setenv("TEST_PORT", "port")

	_, err := env.Parse[int]("TEST_PORT")
	assert.Error(t, err)
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("TEST_PORT"))
	})
}

func TestParseOptional_Returns(t *testing.T) {
	timeout, err := env.ParseOptional[*time.Duration]("TEST_MISSING_TIMEOUT")
	require.NoError(t, err)
	assert.Nil(t, timeout)

	t.Setenv("TEST_TIMEOUT", "5s")
	timeout, err = env.ParseOptional[*time.Duration]("TEST_TIMEOUT")
	require.NoError(t, err)
	require.NotNil(t, timeout)
	assert.Equal(t, 5*time.Second, *timeout)
}

func TestParseDefault_Returns(t *testing.T) {
	dir, err := env.ParseDefault("TEST_STATIC_DIR", "dist")
	require.NoError(t, err)
	assert.Equal(t, "dist", dir)

	t.Setenv("TEST_STATIC_DIR", "public")
	dir, err = env.ParseDefault("TEST_STATIC_DIR", "dist")
	require.NoError(t, err)
	assert.Equal(t, "public", dir)
}
