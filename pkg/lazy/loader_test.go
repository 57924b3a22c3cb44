package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/pkg/lazy"
)

func TestLoader_Load_CallsProviderOnce(t *testing.T) {
	calls := 0
	loader := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	called := false
	loader.IfLoaded(func(int) { called = true })
	assert.False(t, called)

	assert.Equal(t, 42, loader.MustLoad())
	assert.Equal(t, 42, loader.MustLoad())
	assert.Equal(t, 1, calls)

	loader.IfLoaded(func(v int) {
		called = true
		assert.Equal(t, 42, v)
	})
	assert.True(t, called)
}

func TestLoader_Load_ReturnsProviderError(t *testing.T) {
	loader := lazy.New(func() (string, error) {
		return "", errors.New("unavailable")
	})

	_, err := loader.Load()
	require.Error(t, err)
	assert.Panics(t, func() { loader.MustLoad() })
}

func TestValue_ReturnsWrapped(t *testing.T) {
	assert.Equal(t, "dist", lazy.Value("dist").MustLoad())
}
