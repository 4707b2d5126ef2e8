package config

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// ConfigInvalidError is returned when a required setting is missing or
// malformed. It is fatal at startup.
func ConfigInvalidError(field, reason string) error {
	msg := `Invalid configuration of <em>%s</em>: %s

<em>How to fix:</em>
  1. Edit ~/.config/pokedb/config.yaml
  2. Or set the corresponding POKEDB_* environment variable`

	vars := []any{field, reason}

	return &gn.Error{
		Code: errcode.ConfigInvalidError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid configuration of %s: %s", field, reason),
	}
}
