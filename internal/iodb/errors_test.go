package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "test", "postgres",
		originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 6)
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/test")
}

func TestNotConnectedError_Structure(t *testing.T) {
	gnErr, ok := NotConnectedError().(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.Nil(t, gnErr.Vars)
}

func TestTableExistsCheckError_Structure(t *testing.T) {
	originalErr := errors.New("query failed")
	gnErr, ok := TableExistsCheckError("species", originalErr).(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBSchemaError, gnErr.Code)
	assert.Equal(t, []any{"species"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
