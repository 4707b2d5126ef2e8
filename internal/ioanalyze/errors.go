package ioanalyze

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

func ReportWriteError(path string, err error) error {
	msg := "Cannot save statistics report to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write report %s: %w", path, err),
	}
}
