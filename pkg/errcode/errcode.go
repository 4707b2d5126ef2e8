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

	// Configuration errors
	ConfigInvalidError

	// Database errors
	DBConnectionError
	DBConnectionLostError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaReseedError
	SchemaVacuumError

	// Fetch errors
	FetchNotFoundError
	FetchTransportError
	FetchDecodeError

	// Normalize errors
	NormalizeFieldError

	// Upsert errors
	UpsertPokemonError
	UpsertTypeError
	UpsertAbilityError
	UpsertLinkError

	// Populate errors
	PopulateRangeError
	PopulateAllFailedError
	PopulateMetricsError

	// Analysis errors
	DatasetQueryError
	DatasetScanError
	DatasetColumnError
	ReportWriteError
	ChartRenderError
)
