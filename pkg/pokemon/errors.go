package pokemon

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// ExtractionError reports a malformed or missing required field.
// A record that fails extraction is not written anywhere.
func ExtractionError(field string, err error) error {
	msg := "Cannot extract field <em>%s</em> from catalog entry"
	vars := []any{field}
	return &gn.Error{
		Code: errcode.NormalizeFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot extract %s: %w", field, err),
	}
}

// IsExtractionError reports whether err comes from Normalize.
func IsExtractionError(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.NormalizeFieldError
	}
	return false
}

var errNegative = errors.New("value cannot be negative")
var errEmpty = errors.New("value cannot be empty")
