package repository

// Page is the limit/offset window a list query reads.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one window of items plus the total count matching the query.
// Total stays meaningful when Items is empty (offset past the end).
type PageResult[T any] struct {
	Items []T
	Total int
}
