package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Species list errors
	SpeciesListReadError
	SpeciesListEmptyError

	// Remote API errors
	FetchError
	DecodeError

	// Assessment data errors
	ThreatDepthError
	AssessmentDateError
	MalformedFieldError

	// Row storage errors
	RowWriteError
	RowReadError
	NoRowsError

	// Output table errors
	TableWriteError
	SQLiteWriteError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBSchemaError
	DBExportError

	// Harvest errors
	HarvestCancelledError
	HarvestAllFailedError
)
