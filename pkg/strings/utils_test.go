package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/pkg/strings"
)

func TestParseTypedValue_ValueTypes(t *testing.T) {
	i, err := strings.ParseTypedValue[int]("3001")
	require.NoError(t, err)
	assert.Equal(t, 3001, i)

	b, err := strings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	d, err := strings.ParseTypedValue[time.Duration]("20s")
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, d)

	id := uuid.New()
	parsedID, err := strings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)

	tm, err := strings.ParseTypedValue[time.Time]("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), tm.Unix())
}

func TestParseTypedValue_PointerTypes(t *testing.T) {
	port, err := strings.ParseTypedValue[*int]("8080")
	require.NoError(t, err)
	require.NotNil(t, port)
	assert.Equal(t, 8080, *port)

	s, err := strings.ParseTypedValue[*string]("dist")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "dist", *s)
}

func TestParseTypedValue_InvalidValue_ReturnsError(t *testing.T) {
	_, err := strings.ParseTypedValue[int]("not-a-number")
	assert.Error(t, err)

	_, err = strings.ParseTypedValue[uuid.UUID]("not-a-valid-id")
	assert.Error(t, err)

	_, err = strings.ParseTypedValue[time.Time]("-5")
	assert.Error(t, err)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "get_api_persons", strings.ToSnakeCase("GET api persons"))
	assert.Equal(t, "person_id", strings.ToSnakeCase("personID"))
}
