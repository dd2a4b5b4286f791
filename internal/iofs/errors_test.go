package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	origErr := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		text string
	}{
		{"create dir", CreateDirError("/test/dir", origErr),
			errcode.CreateDirError, "cannot create directory"},
		{"copy file", CopyFileError("/test/config.yaml", origErr),
			errcode.CopyFileError, "cannot copy file"},
		{"read config", ReadConfigError("/test/config.yaml", origErr),
			errcode.ReadFileError, "cannot read /test/config.yaml"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.ErrorIs(t, gnErr.Err, origErr, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		assert.Contains(t, gnErr.Err.Error(), "iofs", v.msg)
	}
}
