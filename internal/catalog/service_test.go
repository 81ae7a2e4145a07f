package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// ============================================================================
// MOCK REPOSITORY
// ============================================================================

type mockCatalogRepo struct {
	products []Product
}

func (m *mockCatalogRepo) matches(p Product, filters ListFilters) bool {
	if !p.IsActive {
		return false
	}
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	if filters.Search != "" {
		if !contains(p.Name, filters.Search) && !contains(p.Brand, filters.Search) &&
			!contains(p.Colorway, filters.Search) && !contains(p.Description, filters.Search) {
			return false
		}
	}
	if filters.Brand != "" && !contains(p.Brand, filters.Brand) {
		return false
	}
	if len(filters.WeightCategories) > 0 {
		found := false
		for _, wc := range filters.WeightCategories {
			if p.WeightCategory == wc {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filters.FiberContent != "" && !contains(p.FiberContent, filters.FiberContent) {
		return false
	}
	if filters.MinPrice != nil && p.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
		return false
	}
	if filters.InStock != nil {
		if *filters.InStock && p.StockQuantity <= 0 {
			return false
		}
		if !*filters.InStock && p.StockQuantity > 0 {
			return false
		}
	}
	return true
}

func (m *mockCatalogRepo) filtered(filters ListFilters) []Product {
	out := []Product{}
	for _, p := range m.products {
		if m.matches(p, filters) {
			out = append(out, p)
		}
	}
	return out
}

func (m *mockCatalogRepo) Count(ctx context.Context, filters ListFilters) (int, error) {
	return len(m.filtered(filters)), nil
}

func (m *mockCatalogRepo) Page(ctx context.Context, req ListRequest, limit, offset int) ([]Product, error) {
	matched := m.filtered(req.Filters)
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if req.SortDesc {
			a, b = b, a
		}
		switch req.SortBy {
		case SortByPrice:
			return a.Price < b.Price
		case SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.Name < b.Name
		}
	})
	if offset >= len(matched) {
		return []Product{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *mockCatalogRepo) Get(ctx context.Context, id string) (*Product, error) {
	for _, p := range m.products {
		if p.ID == id && p.IsActive {
			clone := p
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockCatalogRepo) group(key func(Product) string) []AggregateCount {
	counts := map[string]int{}
	for _, p := range m.products {
		if p.IsActive && p.StockQuantity > 0 {
			counts[key(p)]++
		}
	}
	out := []AggregateCount{}
	for name, count := range counts {
		out = append(out, AggregateCount{Name: name, Count: count})
	}
	return out
}

func (m *mockCatalogRepo) CountByWeight(ctx context.Context) ([]AggregateCount, error) {
	return m.group(func(p Product) string { return string(p.WeightCategory) }), nil
}

func (m *mockCatalogRepo) CountByBrand(ctx context.Context) ([]AggregateCount, error) {
	return m.group(func(p Product) string { return p.Brand }), nil
}

func (m *mockCatalogRepo) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	contains := func(haystack string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
	}
	out := []Product{}
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if contains(p.Name) || contains(p.Brand) || contains(p.Colorway) || contains(p.Description) || contains(p.FiberContent) {
			clone := p
			if len(clone.Images) > 1 {
				clone.Images = clone.Images[:1]
			}
			out = append(out, clone)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

var _ Repository = (*mockCatalogRepo)(nil)

func testProduct(i int, opts func(*Product)) Product {
	p := Product{
		ID:             fmt.Sprintf("p-%03d", i),
		Name:           fmt.Sprintf("Yarn %03d", i),
		Brand:          "Common Thread",
		Colorway:       "Natural",
		Description:    "A soft everyday yarn",
		Price:          10,
		WeightCategory: WeightWorsted,
		FiberContent:   "100% wool",
		StockQuantity:  5,
		IsActive:       true,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		Images:         []ProductImage{},
	}
	if opts != nil {
		opts(&p)
	}
	return p
}

// ============================================================================
// TESTS
// ============================================================================

func TestListCapsLimitConsistently(t *testing.T) {
	repo := &mockCatalogRepo{}
	for i := 0; i < 150; i++ {
		repo.products = append(repo.products, testProduct(i, nil))
	}
	svc := NewService(repo, nil)

	page, err := svc.List(context.Background(), ListRequest{Page: 1, Limit: 500, SortBy: SortByName})
	require.NoError(t, err)
	assert.Len(t, page.Data, 100)
	assert.Equal(t, shared.Pagination{Page: 1, Limit: 100, Total: 150, TotalPages: 2}, page.Pagination)

	// The capped limit drives the offset too, so page 2 starts at row 100.
	second, err := svc.List(context.Background(), ListRequest{Page: 2, Limit: 500, SortBy: SortByName})
	require.NoError(t, err)
	require.Len(t, second.Data, 50)
	assert.Equal(t, "Yarn 100", second.Data[0].Name)
}

func TestListDefaults(t *testing.T) {
	repo := &mockCatalogRepo{}
	for i := 0; i < 30; i++ {
		repo.products = append(repo.products, testProduct(i, nil))
	}
	svc := NewService(repo, nil)

	page, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Data, shared.DefaultLimit)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, shared.DefaultLimit, page.Pagination.Limit)
}

func TestListInStockFilter(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.StockQuantity = 3 }),
		testProduct(2, func(p *Product) { p.StockQuantity = 0 }),
		testProduct(3, func(p *Product) { p.StockQuantity = -1 }),
	}}
	svc := NewService(repo, nil)

	inStock := true
	page, err := svc.List(context.Background(), ListRequest{Filters: ListFilters{InStock: &inStock}})
	require.NoError(t, err)
	for _, p := range page.Data {
		assert.Greater(t, p.StockQuantity, 0)
	}
	assert.Equal(t, 1, page.Pagination.Total)

	inStock = false
	page, err = svc.List(context.Background(), ListRequest{Filters: ListFilters{InStock: &inStock}})
	require.NoError(t, err)
	for _, p := range page.Data {
		assert.LessOrEqual(t, p.StockQuantity, 0)
	}
	assert.Equal(t, 2, page.Pagination.Total)
}

func TestListPriceRangeInclusive(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.Price = 19.99 }),
		testProduct(2, func(p *Product) { p.Price = 20 }),
		testProduct(3, func(p *Product) { p.Price = 25 }),
		testProduct(4, func(p *Product) { p.Price = 30 }),
		testProduct(5, func(p *Product) { p.Price = 30.01 }),
	}}
	svc := NewService(repo, nil)

	page, err := svc.List(context.Background(), ListRequest{Filters: ListFilters{
		MinPrice: floatPtr(20), MaxPrice: floatPtr(30),
	}})
	require.NoError(t, err)
	require.Equal(t, 3, page.Pagination.Total)
	for _, p := range page.Data {
		assert.GreaterOrEqual(t, p.Price, 20.0)
		assert.LessOrEqual(t, p.Price, 30.0)
	}
}

func TestListExcludesInactive(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, nil),
		testProduct(2, func(p *Product) { p.IsActive = false }),
	}}
	svc := NewService(repo, nil)

	page, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestListSortByPriceDesc(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.Price = 5 }),
		testProduct(2, func(p *Product) { p.Price = 50 }),
		testProduct(3, func(p *Product) { p.Price = 20 }),
	}}
	svc := NewService(repo, nil)

	page, err := svc.List(context.Background(), ListRequest{SortBy: SortByPrice, SortDesc: true})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, 50.0, page.Data[0].Price)
	assert.Equal(t, 5.0, page.Data[2].Price)
}

func TestGetNotFoundForInactive(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.ID = "inactive"; p.IsActive = false }),
	}}
	svc := NewService(repo, nil)

	_, err := svc.Get(context.Background(), "inactive")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBrandsSortedAlphabeticallyAndInStockOnly(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.Brand = "Malabrigo" }),
		testProduct(2, func(p *Product) { p.Brand = "Brooklyn Tweed" }),
		testProduct(3, func(p *Product) { p.Brand = "Brooklyn Tweed" }),
		testProduct(4, func(p *Product) { p.Brand = "cascade" }),
		testProduct(5, func(p *Product) { p.Brand = "Sold Out Mills"; p.StockQuantity = 0 }),
	}}
	svc := NewService(repo, nil)

	brands, err := svc.Brands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 3)
	// Collated sort is case-insensitive, unlike a plain byte compare.
	assert.Equal(t, "Brooklyn Tweed", brands[0].Name)
	assert.Equal(t, 2, brands[0].Count)
	assert.Equal(t, "cascade", brands[1].Name)
	assert.Equal(t, "Malabrigo", brands[2].Name)
}

func TestCategoriesCountsInStockActive(t *testing.T) {
	repo := &mockCatalogRepo{products: []Product{
		testProduct(1, func(p *Product) { p.WeightCategory = WeightDK }),
		testProduct(2, func(p *Product) { p.WeightCategory = WeightDK }),
		testProduct(3, func(p *Product) { p.WeightCategory = WeightLace; p.StockQuantity = 0 }),
		testProduct(4, func(p *Product) { p.WeightCategory = WeightBulky; p.IsActive = false }),
	}}
	svc := NewService(repo, nil)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []AggregateCount{{Name: "DK", Count: 2}}, categories)
}

func TestSearchLimitAndPrimaryImage(t *testing.T) {
	repo := &mockCatalogRepo{}
	for i := 0; i < 25; i++ {
		repo.products = append(repo.products, testProduct(i, func(p *Product) {
			p.Images = []ProductImage{
				{ID: "img-main", URL: "a.jpg", IsMain: true, Order: 0},
				{ID: "img-alt", URL: "b.jpg", Order: 1},
			}
		}))
	}
	svc := NewService(repo, nil)

	products, err := svc.Search(context.Background(), "yarn")
	require.NoError(t, err)
	assert.Len(t, products, 20)
	for _, p := range products {
		require.Len(t, p.Images, 1)
		assert.Equal(t, "img-main", p.Images[0].ID)
	}
}
