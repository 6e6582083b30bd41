package hydra

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument marks construction input that is not usable as page metadata.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the field that failed and the dynamic type it arrived as.
type ArgumentError struct {
	Field string
	Type  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s should be an integer, got %s", ErrInvalidArgument, e.Field, e.Type)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// FromValues is New for values that arrive untyped, e.g. a decoded YAML page file.
// pageNumber, itemsPerPage and totalItems must hold a Go integer kind that fits in
// int; floats, strings, json.Number, nil and overflowing values are rejected with
// an *ArgumentError.
func FromValues[T any](pageNumber, itemsPerPage any, members []T, totalItems any, opts ...Option) (*PagedCollection[T], error) {
	page, err := toInt("pageNumber", pageNumber)
	if err != nil {
		return nil, err
	}
	perPage, err := toInt("itemsPerPage", itemsPerPage)
	if err != nil {
		return nil, err
	}
	total, err := toInt("totalItems", totalItems)
	if err != nil {
		return nil, err
	}
	return New(page, perPage, members, total, opts...), nil
}

func toInt(field string, v any) (int, error) {
	overflow := &ArgumentError{Field: field, Type: fmt.Sprintf("%T (overflows int)", v)}
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, overflow
		}
		return int(n), nil
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, overflow
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, overflow
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, overflow
		}
		return int(n), nil
	case nil:
		return 0, &ArgumentError{Field: field, Type: "nil"}
	default:
		return 0, &ArgumentError{Field: field, Type: fmt.Sprintf("%T", v)}
	}
}
