package pageurl_test

import (
	"crypto/tls"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/hydra-paging/internal/hydra"
	"github.com/maxviazov/hydra-paging/internal/pageurl"
)

var (
	_ hydra.PageURLGenerator = pageurl.Query{}
	_ hydra.PageURLGenerator = pageurl.Template{}
)

func TestQuery_KeepsOtherParams(t *testing.T) {
	base, err := url.Parse("https://api.example.com/api/v1/events?itemsPerPage=10&page=7&q=jazz")
	require.NoError(t, err)
	g := pageurl.NewQuery(base, "")

	assert.Equal(t, "https://api.example.com/api/v1/events?itemsPerPage=10&page=3&q=jazz", g.URLForPage(3))
	// base must not be touched by rendering
	assert.Equal(t, "itemsPerPage=10&page=7&q=jazz", base.RawQuery)
}

func TestQuery_CustomParam(t *testing.T) {
	base, err := url.Parse("/events")
	require.NoError(t, err)
	assert.Equal(t, "/events?p=0", pageurl.NewQuery(base, "p").URLForPage(0))
}

func TestTemplate(t *testing.T) {
	g, err := pageurl.NewTemplate("/events/page/{page}")
	require.NoError(t, err)
	assert.Equal(t, "/events/page/12", g.URLForPage(12))

	_, err = pageurl.NewTemplate("/events/page")
	assert.ErrorIs(t, err, pageurl.ErrMissingPlaceholder)
}

func TestFromRequest(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		headers map[string]string
		tls     bool
		trust   bool
		want    string
	}{
		{
			name:   "plain http",
			target: "http://svc.local/api/v1/events?itemsPerPage=5",
			want:   "http://svc.local/api/v1/events?itemsPerPage=5&page=2",
		},
		{
			name:   "tls",
			target: "https://svc.local/api/v1/events",
			tls:    true,
			want:   "https://svc.local/api/v1/events?page=2",
		},
		{
			name:    "forwarded ignored when untrusted",
			target:  "http://svc.local/api/v1/events",
			headers: map[string]string{"X-Forwarded-Proto": "https", "X-Forwarded-Host": "public.example.com"},
			want:    "http://svc.local/api/v1/events?page=2",
		},
		{
			name:    "forwarded trusted",
			target:  "http://svc.local/api/v1/events",
			headers: map[string]string{"X-Forwarded-Proto": "https, http", "X-Forwarded-Host": "public.example.com"},
			trust:   true,
			want:    "https://public.example.com/api/v1/events?page=2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			if !tc.tls {
				r.TLS = nil
			} else if r.TLS == nil {
				r.TLS = &tls.ConnectionState{}
			}
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			g := pageurl.FromRequest(r, pageurl.DefaultParam, tc.trust)
			assert.Equal(t, tc.want, g.URLForPage(2))
		})
	}
}
