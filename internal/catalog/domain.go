package catalog

import "time"

// WeightCategory classifies yarn thickness.
type WeightCategory string

const (
	WeightLace       WeightCategory = "LACE"
	WeightFingering  WeightCategory = "FINGERING"
	WeightSport      WeightCategory = "SPORT"
	WeightDK         WeightCategory = "DK"
	WeightWorsted    WeightCategory = "WORSTED"
	WeightBulky      WeightCategory = "BULKY"
	WeightSuperBulky WeightCategory = "SUPER_BULKY"
)

// ProductImage is one image of a product, ordered by Order.
type ProductImage struct {
	ID      string  `json:"id"`
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
	IsMain  bool    `json:"isMain"`
	Order   int     `json:"order"`
}

// Product represents a catalog entry. Only active products are ever served.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Brand          string         `json:"brand"`
	Colorway       string         `json:"colorway"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	WeightCategory WeightCategory `json:"weightCategory"`
	FiberContent   string         `json:"fiberContent"`
	StockQuantity  int            `json:"stockQuantity"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Images         []ProductImage `json:"images"`
}

// AggregateCount is a grouped count for the category and brand listings.
type AggregateCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
