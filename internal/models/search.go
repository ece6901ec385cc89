package models

// SearchResult is the outcome of a name search.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}
