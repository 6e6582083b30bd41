// Package pageurl provides the page link strategies used by the HTTP layer.
// Both strategies satisfy hydra.PageURLGenerator.
package pageurl

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultParam is the query parameter carrying the page number.
const DefaultParam = "page"

// Placeholder marks where the page number goes in a Template pattern.
const Placeholder = "{page}"

// ErrMissingPlaceholder is returned by NewTemplate for a pattern without Placeholder.
var ErrMissingPlaceholder = errors.New("pattern has no " + Placeholder + " placeholder")

// Query sets the page number as a query parameter on a copy of Base.
// Every other parameter of Base is kept, so filters survive navigation.
type Query struct {
	Base  *url.URL
	Param string
}

// NewQuery falls back to DefaultParam when param is empty.
func NewQuery(base *url.URL, param string) Query {
	if param == "" {
		param = DefaultParam
	}
	return Query{Base: base, Param: param}
}

// URLForPage replaces any existing value of Param.
func (q Query) URLForPage(pageNumber int) string {
	u := *q.Base
	values := u.Query()
	values.Set(q.Param, strconv.Itoa(pageNumber))
	u.RawQuery = values.Encode()
	return u.String()
}

// Template substitutes the page number into a path pattern such as /events/page/{page}.
type Template struct {
	Pattern string
}

// NewTemplate rejects patterns without Placeholder.
func NewTemplate(pattern string) (Template, error) {
	if !strings.Contains(pattern, Placeholder) {
		return Template{}, ErrMissingPlaceholder
	}
	return Template{Pattern: pattern}, nil
}

// URLForPage substitutes every occurrence of Placeholder.
func (t Template) URLForPage(pageNumber int) string {
	return strings.ReplaceAll(t.Pattern, Placeholder, strconv.Itoa(pageNumber))
}

// FromRequest builds absolute page links pointing back at the request URL.
// X-Forwarded-Proto and X-Forwarded-Host are honoured only when trustForwarded is set.
func FromRequest(r *http.Request, param string, trustForwarded bool) Query {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if trustForwarded {
		if p := firstValue(r.Header.Get("X-Forwarded-Proto")); p != "" {
			scheme = p
		}
		if h := firstValue(r.Header.Get("X-Forwarded-Host")); h != "" {
			host = h
		}
	}
	base := &url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
	return NewQuery(base, param)
}

// firstValue takes the client-most entry of a comma separated proxy header.
func firstValue(h string) string {
	if i := strings.IndexByte(h, ','); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSpace(h)
}
