package strapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds content service query strings. Keys keep their literal
// brackets (filters[slug][$eq]) and only values are escaped, in insertion order.
type Query struct {
	parts []string
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Set appends key=value with the value escaped.
func (q *Query) Set(key, value string) *Query {
	q.parts = append(q.parts, key+"="+url.QueryEscape(value))

	return q
}

// Populate requests the given relations, e.g. populate=features,image.
func (q *Query) Populate(relations ...string) *Query {
	return q.Set("populate", strings.Join(relations, ","))
}

// Fields restricts the returned attributes, e.g. fields[0]=slug.
func (q *Query) Fields(fields ...string) *Query {
	for i, f := range fields {
		q.Set("fields["+strconv.Itoa(i)+"]", f)
	}

	return q
}

// Eq adds an exact-match filter on field.
func (q *Query) Eq(field, value string) *Query {
	return q.Set("filters["+field+"][$eq]", value)
}

// ContainsAny adds a case-insensitive OR filter: one $containsi clause per field.
func (q *Query) ContainsAny(value string, fields ...string) *Query {
	for i, f := range fields {
		q.Set("filters[$or]["+strconv.Itoa(i)+"]["+f+"][$containsi]", value)
	}

	return q
}

// Paginate adds page-based pagination.
func (q *Query) Paginate(page, pageSize int) *Query {
	q.Set("pagination[page]", strconv.Itoa(page))

	return q.Set("pagination[pageSize]", strconv.Itoa(pageSize))
}

// Encode returns the query string without the leading '?'.
func (q *Query) Encode() string {
	return strings.Join(q.parts, "&")
}

// Path joins an API path and the query.
func (q *Query) Path(path string) string {
	if len(q.parts) == 0 {
		return path
	}

	return path + "?" + q.Encode()
}
