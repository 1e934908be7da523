package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateHash(t *testing.T) {
	body := []byte(`{"a":1}`)

	require.Equal(t, CalculateHash(body, "key"), CalculateHash(body, "key"))
	require.NotEqual(t, CalculateHash(body, "key"), CalculateHash(body, "other"))
	require.NotEqual(t, CalculateHash(body, "key"), CalculateHash([]byte(`{"a":2}`), "key"))
	require.Len(t, CalculateHash(body, "key"), 64) // hex SHA-256
}

func TestPointerHelpers(t *testing.T) {
	f := F64Ptr(3.14)
	require.NotNil(t, f)
	require.Equal(t, 3.14, *f)

	i := IntPtr(42)
	require.NotNil(t, i)
	require.Equal(t, 42, *i)
}
