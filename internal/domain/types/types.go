// Package types contains common types used across the application
package types

// Row is one entry of a ranking: a named entity and its metric value.
type Row struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}
