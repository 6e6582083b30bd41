package hydra_test

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/hydra-paging/internal/hydra"
)

// identity renders the page number itself, so assertions read as numbers.
var identity = hydra.PageURLGeneratorFunc(strconv.Itoa)

// countingGenerator records how often it was asked for a URL.
type countingGenerator struct{ calls int }

func (g *countingGenerator) URLForPage(n int) string {
	g.calls++
	return strconv.Itoa(n)
}

func TestSerialize_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		coll *hydra.PagedCollection[string]
		want string
	}{
		{
			name: "first page links next and last",
			coll: hydra.New(1, 1, []string{"item one"}, 2, hydra.WithGenerator(identity)),
			want: `{"@context":"http://www.w3.org/ns/hydra/context.jsonld","@type":"PagedCollection","itemsPerPage":1,"totalItems":2,"member":["item one"],"firstPage":"1","lastPage":"2","nextPage":"2"}`,
		},
		{
			name: "last page links previous and first",
			coll: hydra.New(2, 1, []string{"item two"}, 2, hydra.WithGenerator(identity)),
			want: `{"@context":"http://www.w3.org/ns/hydra/context.jsonld","@type":"PagedCollection","itemsPerPage":1,"totalItems":2,"member":["item two"],"firstPage":"1","lastPage":"2","previousPage":"1"}`,
		},
		{
			name: "zero based first page",
			coll: hydra.New(0, 1, []string{"item one"}, 2, hydra.WithGenerator(identity), hydra.ZeroBased(true)),
			want: `{"@context":"http://www.w3.org/ns/hydra/context.jsonld","@type":"PagedCollection","itemsPerPage":1,"totalItems":2,"member":["item one"],"firstPage":"0","lastPage":"1","nextPage":"1"}`,
		},
		{
			name: "zero based second page",
			coll: hydra.New(1, 1, []string{"item two"}, 2, hydra.WithGenerator(identity), hydra.ZeroBased(true)),
			want: `{"@context":"http://www.w3.org/ns/hydra/context.jsonld","@type":"PagedCollection","itemsPerPage":1,"totalItems":2,"member":["item two"],"firstPage":"0","lastPage":"1","previousPage":"0"}`,
		},
		{
			name: "no generator leaves out page info",
			coll: hydra.New(1, 1, []string{"item two"}, 2),
			want: `{"@context":"http://www.w3.org/ns/hydra/context.jsonld","@type":"PagedCollection","itemsPerPage":1,"totalItems":2,"member":["item two"]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.coll)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestSerialize_KeyOrder(t *testing.T) {
	doc := hydra.New(2, 2, []int{3, 4}, 6, hydra.WithGenerator(identity)).Serialize()
	assert.Equal(t, []string{
		"@context", "@type", "itemsPerPage", "totalItems", "member",
		"firstPage", "lastPage", "previousPage", "nextPage",
	}, doc.Keys())
}

func TestSerialize_KeepsEmptyValues(t *testing.T) {
	empty := hydra.PageURLGeneratorFunc(func(int) string { return "" })
	doc := hydra.New[string](1, 10, nil, 0, hydra.WithGenerator(empty)).Serialize()

	member, ok := doc.Get("member")
	require.True(t, ok)
	assert.Equal(t, []string{}, member)

	total, ok := doc.Get("totalItems")
	require.True(t, ok)
	assert.Equal(t, 0, total)

	first, ok := doc.Get("firstPage")
	require.True(t, ok, "empty string is a value, not an absence")
	assert.Equal(t, "", first)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"member":[]`)
}

func TestLinks_Properties(t *testing.T) {
	for _, zeroBased := range []bool{false, true} {
		first := 1
		if zeroBased {
			first = 0
		}
		for s := 1; s <= 4; s++ {
			for n := 0; n <= 12; n++ {
				last := first + n/s
				for p := first; p <= last+1; p++ {
					c := hydra.New[int](p, s, nil, n, hydra.WithGenerator(identity), hydra.ZeroBased(zeroBased))

					got, ok := c.FirstPage()
					require.True(t, ok)
					assert.Equal(t, strconv.Itoa(first), got)

					got, ok = c.LastPage()
					require.True(t, ok)
					assert.Equal(t, strconv.Itoa(last), got)

					next, ok := c.NextPage()
					assert.Equal(t, last > p, ok, "next p=%d s=%d n=%d zero=%v", p, s, n, zeroBased)
					if ok {
						assert.Equal(t, strconv.Itoa(p+1), next)
					}

					prev, ok := c.PreviousPage()
					assert.Equal(t, p > first, ok, "prev p=%d s=%d n=%d zero=%v", p, s, n, zeroBased)
					if ok {
						assert.Equal(t, strconv.Itoa(p-1), prev)
					}
				}
			}
		}
	}
}

func TestLinks_ZeroBasedShiftsByOne(t *testing.T) {
	one := hydra.New[int](2, 3, nil, 10, hydra.WithGenerator(identity)).Serialize()
	zero := hydra.New[int](1, 3, nil, 10, hydra.WithGenerator(identity), hydra.ZeroBased(true)).Serialize()

	for _, key := range []string{"firstPage", "lastPage", "previousPage", "nextPage"} {
		a, ok := one.Get(key)
		require.True(t, ok, key)
		b, ok := zero.Get(key)
		require.True(t, ok, key)
		ai, _ := strconv.Atoi(a.(string))
		bi, _ := strconv.Atoi(b.(string))
		assert.Equal(t, ai-1, bi, key)
	}
}

func TestLinks_WithoutGeneratorNeverComputes(t *testing.T) {
	// itemsPerPage 0 would panic if the last page were computed.
	c := hydra.New[string](3, 0, nil, 100)

	for _, fn := range []func() (string, bool){c.FirstPage, c.LastPage, c.NextPage, c.PreviousPage} {
		_, ok := fn()
		assert.False(t, ok)
	}
	assert.Equal(t, []string{"@context", "@type", "itemsPerPage", "totalItems", "member"}, c.Serialize().Keys())
}

func TestLastPage_ZeroItemsPerPagePanics(t *testing.T) {
	c := hydra.New[string](1, 0, nil, 5, hydra.WithGenerator(identity))
	assert.Panics(t, func() { _, _ = c.LastPage() })
}

func TestLastPage_ExactMultipleKeepsFloorFormula(t *testing.T) {
	// 10 items at 5 per page: the floor formula reports page 3, not 2.
	c := hydra.New[string](1, 5, nil, 10, hydra.WithGenerator(identity))
	last, ok := c.LastPage()
	require.True(t, ok)
	assert.Equal(t, "3", last)
}

func TestCopyWith_LeavesOriginalUntouched(t *testing.T) {
	gen := &countingGenerator{}
	orig := hydra.New(1, 2, []string{"a", "b"}, 5, hydra.WithGenerator(gen), hydra.ZeroBased(true))

	replaced := orig.WithMembers([]string{"c"})
	assert.Equal(t, []string{"a", "b"}, orig.Members())
	assert.Equal(t, []string{"c"}, replaced.Members())
	assert.Equal(t, orig.PageNumber(), replaced.PageNumber())
	assert.Equal(t, orig.ItemsPerPage(), replaced.ItemsPerPage())
	assert.Equal(t, orig.TotalItems(), replaced.TotalItems())
	assert.Same(t, gen, replaced.PageURLGenerator())
	assert.True(t, replaced.UsesZeroBasedNumbering())

	unlinked := orig.WithPageURLGenerator(nil)
	assert.Nil(t, unlinked.PageURLGenerator())
	assert.Same(t, gen, orig.PageURLGenerator())
	assert.Equal(t, orig.Members(), unlinked.Members())

	_, ok := unlinked.FirstPage()
	assert.False(t, ok)
	_, ok = orig.FirstPage()
	assert.True(t, ok)
}

func TestMembers_ReturnsCopy(t *testing.T) {
	c := hydra.New(1, 2, []string{"a", "b"}, 2)
	m := c.Members()
	m[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, c.Members())
}

func TestNew_DetachesFromCallerSlice(t *testing.T) {
	input := []string{"a", "b"}
	c := hydra.New(1, 2, input, 2)
	input[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, c.Members())
	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"member":["a","b"]`)

	replacement := []string{"c"}
	replaced := c.WithMembers(replacement)
	replacement[0] = "mutated"
	assert.Equal(t, []string{"c"}, replaced.Members())
	assert.Equal(t, []string{"a", "b"}, c.Members())
}

func TestNew_NilMembersStillSerializeAsEmptyList(t *testing.T) {
	c := hydra.New[string](1, 2, nil, 0).WithMembers(nil)
	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"member":[]`)
}

func TestMapMembers_KeepsMetadata(t *testing.T) {
	c := hydra.New(2, 2, []int{3, 4}, 7, hydra.WithGenerator(identity))
	mapped := hydra.MapMembers(c, func(n int) string { return "item-" + strconv.Itoa(n) })

	assert.Equal(t, []string{"item-3", "item-4"}, mapped.Members())
	assert.Equal(t, c.Serialize().Keys(), mapped.Serialize().Keys())
	next, ok := mapped.NextPage()
	require.True(t, ok)
	assert.Equal(t, "3", next)
}

func TestFromValues(t *testing.T) {
	cases := []struct {
		name      string
		page      any
		perPage   any
		total     any
		wantField string
		wantMsg   string
	}{
		{name: "ints", page: 1, perPage: int64(10), total: uint32(25)},
		{name: "page as string", page: "1", perPage: 10, total: 25, wantField: "pageNumber", wantMsg: "invalid argument: pageNumber should be an integer, got string"},
		{name: "per page as float", page: 1, perPage: 10.0, total: 25, wantField: "itemsPerPage", wantMsg: "invalid argument: itemsPerPage should be an integer, got float64"},
		{name: "total as json number", page: 1, perPage: 10, total: json.Number("25"), wantField: "totalItems", wantMsg: "invalid argument: totalItems should be an integer, got json.Number"},
		{name: "total missing", page: 1, perPage: 10, total: nil, wantField: "totalItems", wantMsg: "invalid argument: totalItems should be an integer, got nil"},
		{name: "total above max int", page: 1, perPage: 10, total: uint64(math.MaxUint64), wantField: "totalItems", wantMsg: "invalid argument: totalItems should be an integer, got uint64 (overflows int)"},
		{name: "page above max int", page: uint(math.MaxUint), perPage: 10, total: 25, wantField: "pageNumber", wantMsg: "invalid argument: pageNumber should be an integer, got uint (overflows int)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := hydra.FromValues(tc.page, tc.perPage, []string{"x"}, tc.total)
			if tc.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, c.PageNumber())
				assert.Equal(t, 10, c.ItemsPerPage())
				assert.Equal(t, 25, c.TotalItems())
				return
			}
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, hydra.ErrInvalidArgument))
			var argErr *hydra.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tc.wantField, argErr.Field)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestFromValues_AcceptsBoundaryValues(t *testing.T) {
	c, err := hydra.FromValues(uint64(math.MaxInt), int64(1), []string{}, uint(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, c.PageNumber())
	assert.Equal(t, math.MaxInt, c.TotalItems())
}

func TestFromValues_PassesOptions(t *testing.T) {
	c, err := hydra.FromValues(0, 1, []string{"item one"}, 2, hydra.WithGenerator(identity), hydra.ZeroBased(true))
	require.NoError(t, err)
	next, ok := c.NextPage()
	require.True(t, ok)
	assert.Equal(t, "1", next)
}
