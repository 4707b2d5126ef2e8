package dataset

import (
	"errors"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

func ColumnError(name, reason string) error {
	msg := "Column <em>%s</em>: %s"
	vars := []any{name, reason}
	return &gn.Error{
		Code: errcode.DatasetColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  errors.New("column " + name + ": " + reason),
	}
}
