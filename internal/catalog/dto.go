package catalog

import "github.com/gitau15/YarnLoft/internal/shared"

// SortKey selects the listing sort column.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByCreatedAt SortKey = "createdAt"
)

// ListFilters are the predicate parts of a product listing query. All filters
// combine with AND; the free-text search ORs across its fields internally.
type ListFilters struct {
	Search           string
	Brand            string
	WeightCategories []WeightCategory
	FiberContent     string
	MinPrice         *float64
	MaxPrice         *float64
	InStock          *bool
}

// ListRequest is a full listing query including pagination and sort.
type ListRequest struct {
	Filters  ListFilters
	Page     int
	Limit    int
	SortBy   SortKey
	SortDesc bool
}

// ProductPage is the listing payload: one page of products plus pagination metadata.
type ProductPage struct {
	Data       []Product         `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}
