package iofetch

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// NotFoundError means the catalog has no entry with the id.
func NotFoundError(id int, url string) error {
	msg := "Catalog has no entry <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.FetchNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("entry %d not found at %s", id, url),
	}
}

// TransportError means the entry could not be downloaded.
func TransportError(id int, url string, err error) error {
	msg := "Cannot download catalog entry <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.FetchTransportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot get %s: %w", url, err),
	}
}

// DecodeError means the response body is not a JSON object.
func DecodeError(id int, url string, err error) error {
	msg := "Catalog entry <em>%d</em> is not valid JSON"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode %s: %w", url, err),
	}
}

// IsNotFound reports whether err is NotFoundError.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.FetchNotFoundError
	}
	return false
}
