package iodataset

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Dataset cannot be built without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// DatasetQueryError is returned when the dataset query fails, usually
// because the schema was not created.
func DatasetQueryError(err error) error {
	msg := `Cannot read pokemon from the database

<em>How to fix:</em>
  Run <em>pokedb create</em> and <em>pokedb populate</em> first`

	return &gn.Error{
		Code: errcode.DatasetQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("dataset query failed: %w", err),
	}
}

func DatasetScanError(err error) error {
	return &gn.Error{
		Code: errcode.DatasetScanError,
		Msg:  "Cannot read rows of the dataset",
		Err:  fmt.Errorf("dataset scan failed: %w", err),
	}
}
