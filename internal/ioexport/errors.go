package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// NotConnectedError creates an error for when export is attempted
// without database connection.
func NotConnectedError() error {
	msg := "Export attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM connection failures.
func GORMConnectionError(err error) error {
	msg := "Cannot connect to database with GORM"

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// SchemaError creates an error for failed table creation.
func SchemaError(err error) error {
	msg := `Cannot create database tables

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.DBSchemaError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// ExportError creates an error for a failed data transaction.
func ExportError(err error) error {
	msg := "Cannot export the time series, no data was changed"

	return &gn.Error{
		Code: errcode.DBExportError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("export transaction failed: %w", err),
	}
}
