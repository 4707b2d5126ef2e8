package iochart

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

func ChartRenderError(path string, err error) error {
	msg := "Cannot render chart <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ChartRenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot render %s: %w", path, err),
	}
}
