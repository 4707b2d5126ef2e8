package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "pokedb", "postgres",
		originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 5)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestEmptyDatabaseError(t *testing.T) {
	err := EmptyDatabaseError("localhost", "pokedb")

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
	assert.Equal(t, []any{"pokedb", "localhost"}, gnErr.Vars)
}

func TestNotConnectedError(t *testing.T) {
	err := NotConnectedError()

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

func TestErrorsWithTable(t *testing.T) {
	originalErr := errors.New("boom")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"exists check", TableExistsCheckError("pokemon", originalErr),
			errcode.DBTableExistsCheckError},
		{"drop", DropTableError("pokemon", originalErr),
			errcode.DBDropTableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, []any{"pokemon"}, gnErr.Vars)
		})
	}
}

func TestAllErrors_ErrorWrapping(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name  string
		error error
	}{
		{"ConnectionError", ConnectionError("host", 5432, "db", "user",
			originalErr)},
		{"ConnectionLostError", ConnectionLostError(originalErr)},
		{"TableCheckError", TableCheckError(originalErr)},
		{"TableExistsCheckError", TableExistsCheckError("table", originalErr)},
		{"QueryTablesError", QueryTablesError(originalErr)},
		{"ScanTableError", ScanTableError(originalErr)},
		{"DropTableError", DropTableError("table", originalErr)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.error.(*gn.Error)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}
}
