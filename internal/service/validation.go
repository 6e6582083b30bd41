package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/maxviazov/hydra-paging/internal/paging"
)

const (
	minNameLen = 2
	maxNameLen = 200
)

func validateName(name string) *FieldError {
	switch n := utf8.RuneCountInString(name); {
	case strings.TrimSpace(name) == "":
		return &FieldError{Field: "name", Message: "must not be empty"}
	case n < minNameLen || n > maxNameLen:
		return &FieldError{Field: "name", Message: "length must be between 2 and 200"}
	}
	return nil
}

// pageFieldError maps paging failures onto the request parameter that caused them.
func pageFieldError(err error) []FieldError {
	if errors.Is(err, paging.ErrPageOutOfRange) || errors.Is(err, paging.ErrPageTooLarge) {
		return []FieldError{{Field: "page", Message: err.Error()}}
	}
	return []FieldError{{Field: "page", Message: "invalid"}}
}
