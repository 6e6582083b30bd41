// Package paging turns page-number requests into repository windows.
// Page numbers follow the configured scheme: the first page is 0 or 1.
package paging

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/hydra-paging/internal/repository"
)

var (
	// ErrPageOutOfRange is returned for a page number before the first page.
	ErrPageOutOfRange = errors.New("page number is before the first page")
	// ErrPageTooLarge is returned when the page offset does not fit in an int.
	ErrPageTooLarge = errors.New("page number is too large")
)

var validate = validator.New()

// Settings fixes page size bounds and the numbering scheme of a listing.
type Settings struct {
	DefaultItemsPerPage int `validate:"gt=0"`
	MaxItemsPerPage     int `validate:"gtefield=DefaultItemsPerPage"`
	ZeroBased           bool
}

// Validate checks the size bounds: a positive default not above the maximum.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("paging settings: %w", err)
	}
	return nil
}

// FirstPage is 0 for zero-based numbering, otherwise 1.
func (s Settings) FirstPage() int {
	if s.ZeroBased {
		return 0
	}
	return 1
}

// Request is what a client asked for. Nil fields mean "not given".
type Request struct {
	Page         *int
	ItemsPerPage *int
}

// ParseRequest reads raw query values. Blank values count as not given; anything
// else must be an integer.
func ParseRequest(page, itemsPerPage string) (Request, error) {
	var req Request
	var err error
	if req.Page, err = parseOptional(page); err != nil {
		return Request{}, fmt.Errorf("page: %w", err)
	}
	if req.ItemsPerPage, err = parseOptional(itemsPerPage); err != nil {
		return Request{}, fmt.Errorf("itemsPerPage: %w", err)
	}
	return req, nil
}

func parseOptional(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Window is a normalized request: a concrete page number and page size.
type Window struct {
	Page         int
	ItemsPerPage int
	firstPage    int
}

// Normalize fills defaults and clamps the page size. A page before the first
// page is rejected rather than clamped so a client bug does not silently show page one.
// A page whose offset would overflow int is rejected with ErrPageTooLarge.
func Normalize(req Request, s Settings) (Window, error) {
	w := Window{
		Page:         s.FirstPage(),
		ItemsPerPage: s.DefaultItemsPerPage,
		firstPage:    s.FirstPage(),
	}
	if req.Page != nil {
		if *req.Page < w.firstPage {
			return Window{}, ErrPageOutOfRange
		}
		w.Page = *req.Page
	}
	if req.ItemsPerPage != nil && *req.ItemsPerPage > 0 {
		w.ItemsPerPage = *req.ItemsPerPage
	}
	if s.MaxItemsPerPage > 0 && w.ItemsPerPage > s.MaxItemsPerPage {
		w.ItemsPerPage = s.MaxItemsPerPage
	}
	if w.ItemsPerPage > 0 && w.Page-w.firstPage > math.MaxInt/w.ItemsPerPage {
		return Window{}, ErrPageTooLarge
	}
	return w, nil
}

// Range converts the window into the limit/offset a repository reads.
func (w Window) Range() repository.Page {
	return repository.Page{
		Limit:  w.ItemsPerPage,
		Offset: (w.Page - w.firstPage) * w.ItemsPerPage,
	}
}
