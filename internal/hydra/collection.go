// Package hydra renders one page of a collection as a JSON-LD Hydra PagedCollection.
// It owns only the page arithmetic and the link rules; turning a page number into a
// URL is delegated to a PageURLGenerator supplied by the caller.
package hydra

import "encoding/json"

const (
	// ContextURL is echoed verbatim as @context, never resolved.
	ContextURL = "http://www.w3.org/ns/hydra/context.jsonld"
	// TypePagedCollection is the @type of every serialized page.
	TypePagedCollection = "PagedCollection"
)

// PageURLGenerator maps a page number to a navigable URL.
// The collection treats the result as opaque.
type PageURLGenerator interface {
	URLForPage(pageNumber int) string
}

// PageURLGeneratorFunc adapts a plain function to PageURLGenerator.
type PageURLGeneratorFunc func(pageNumber int) string

// URLForPage calls f.
func (f PageURLGeneratorFunc) URLForPage(pageNumber int) string { return f(pageNumber) }

// PagedCollection is an immutable descriptor of a single page.
// Members are expected to be the already sliced page; itemsPerPage is only used
// to work out which page is the last one.
type PagedCollection[T any] struct {
	pageNumber      int
	itemsPerPage    int
	members         []T
	totalItems      int
	generator       PageURLGenerator
	firstPageNumber int
}

type settings struct {
	generator PageURLGenerator
	zeroBased bool
}

// Option tunes construction.
type Option func(*settings)

// WithGenerator enables link fields. A nil generator is the same as none.
func WithGenerator(g PageURLGenerator) Option {
	return func(s *settings) { s.generator = g }
}

// ZeroBased switches numbering so that the first page is 0 instead of 1.
func ZeroBased(enabled bool) Option {
	return func(s *settings) { s.zeroBased = enabled }
}

// New builds a page descriptor. Without WithGenerator no links are produced.
func New[T any](pageNumber, itemsPerPage int, members []T, totalItems int, opts ...Option) *PagedCollection[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	first := 1
	if s.zeroBased {
		first = 0
	}
	return &PagedCollection[T]{
		pageNumber:      pageNumber,
		itemsPerPage:    itemsPerPage,
		members:         cloneMembers(members),
		totalItems:      totalItems,
		generator:       s.generator,
		firstPageNumber: first,
	}
}

// PageNumber is the index of this page in the configured numbering scheme.
func (c *PagedCollection[T]) PageNumber() int { return c.pageNumber }

// ItemsPerPage is the page size used for the last-page arithmetic.
func (c *PagedCollection[T]) ItemsPerPage() int { return c.itemsPerPage }

// TotalItems counts items across all pages.
func (c *PagedCollection[T]) TotalItems() int { return c.totalItems }

// Members returns a copy so callers cannot reach into the page.
func (c *PagedCollection[T]) Members() []T {
	out := make([]T, len(c.members))
	copy(out, c.members)
	return out
}

// PageURLGenerator returns the link strategy, nil when links are disabled.
func (c *PagedCollection[T]) PageURLGenerator() PageURLGenerator { return c.generator }

// UsesZeroBasedNumbering reports whether the first page is 0.
func (c *PagedCollection[T]) UsesZeroBasedNumbering() bool { return c.firstPageNumber == 0 }

// cloneMembers detaches the page from the caller's backing array.
func cloneMembers[T any](members []T) []T {
	return append([]T(nil), members...)
}

// WithMembers returns a copy of c carrying members instead of the current page content.
func (c *PagedCollection[T]) WithMembers(members []T) *PagedCollection[T] {
	out := *c
	out.members = cloneMembers(members)
	return &out
}

// WithPageURLGenerator returns a copy of c rendering links through g (nil drops them).
func (c *PagedCollection[T]) WithPageURLGenerator(g PageURLGenerator) *PagedCollection[T] {
	out := *c
	out.generator = g
	return &out
}

// MapMembers re-renders the same page metadata with every member passed through fn.
func MapMembers[T, U any](c *PagedCollection[T], fn func(T) U) *PagedCollection[U] {
	members := make([]U, len(c.members))
	for i, m := range c.members {
		members[i] = fn(m)
	}
	return &PagedCollection[U]{
		pageNumber:      c.pageNumber,
		itemsPerPage:    c.itemsPerPage,
		members:         members,
		totalItems:      c.totalItems,
		generator:       c.generator,
		firstPageNumber: c.firstPageNumber,
	}
}

// lastPageNumber panics on itemsPerPage == 0 (integer divide by zero).
func (c *PagedCollection[T]) lastPageNumber() int {
	return c.firstPageNumber + c.totalItems/c.itemsPerPage
}

// FirstPage reports the first page URL; ok is false when no generator is set.
func (c *PagedCollection[T]) FirstPage() (string, bool) {
	if c.generator == nil {
		return "", false
	}
	return c.generator.URLForPage(c.firstPageNumber), true
}

// LastPage reports the last page URL; ok is false when no generator is set.
func (c *PagedCollection[T]) LastPage() (string, bool) {
	if c.generator == nil {
		return "", false
	}
	return c.generator.URLForPage(c.lastPageNumber()), true
}

// NextPage is absent on the last page or without a generator.
func (c *PagedCollection[T]) NextPage() (string, bool) {
	if c.generator == nil || c.lastPageNumber() <= c.pageNumber {
		return "", false
	}
	return c.generator.URLForPage(c.pageNumber + 1), true
}

// PreviousPage is absent on the first page or without a generator.
func (c *PagedCollection[T]) PreviousPage() (string, bool) {
	if c.generator == nil || c.pageNumber <= c.firstPageNumber {
		return "", false
	}
	return c.generator.URLForPage(c.pageNumber - 1), true
}

// Serialize builds the Hydra document. Link keys are left out when absent;
// empty strings and empty member lists are kept.
func (c *PagedCollection[T]) Serialize() Document {
	members := c.Members()
	doc := Document{
		{Key: "@context", Value: ContextURL},
		{Key: "@type", Value: TypePagedCollection},
		{Key: "itemsPerPage", Value: c.itemsPerPage},
		{Key: "totalItems", Value: c.totalItems},
		{Key: "member", Value: members},
	}
	links := []struct {
		key string
		fn  func() (string, bool)
	}{
		{"firstPage", c.FirstPage},
		{"lastPage", c.LastPage},
		{"previousPage", c.PreviousPage},
		{"nextPage", c.NextPage},
	}
	for _, l := range links {
		if v, ok := l.fn(); ok {
			doc = append(doc, Field{Key: l.key, Value: v})
		}
	}
	return doc
}

// MarshalJSON implements json.Marshaler.
func (c *PagedCollection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}
