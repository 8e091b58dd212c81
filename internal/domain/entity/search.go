package entity

// SearchState tracks a single search invocation. A fresh invocation always
// starts at SearchIdle; SearchDegraded is terminal for that invocation.
type SearchState string

const (
	SearchIdle      SearchState = "idle"
	SearchQuerying  SearchState = "querying"
	SearchSucceeded SearchState = "succeeded"
	SearchDegraded  SearchState = "degraded"
)

// SearchResultSet holds the merged hits of one search, per entity type.
type SearchResultSet struct {
	Team     []TeamMember `json:"team"`
	Services []Service    `json:"services"`
	Blog     []BlogPost   `json:"blog"`
}

// EmptySearchResultSet returns a set whose collections are empty, not nil.
func EmptySearchResultSet() SearchResultSet {
	return SearchResultSet{
		Team:     []TeamMember{},
		Services: []Service{},
		Blog:     []BlogPost{},
	}
}

// Total returns the number of hits across all collections.
func (r SearchResultSet) Total() int {
	return len(r.Team) + len(r.Services) + len(r.Blog)
}
