package catalog

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// searchResultLimit caps free-text search results.
const searchResultLimit = 20

// Service orchestrates catalog queries.
type Service struct {
	repo     Repository
	cache    *Cache
	collator *collate.Collator
}

// NewService builds a Service instance. cache may be nil.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		collator: collate.New(language.English),
	}
}

// List returns one page of matching products plus pagination metadata.
// The capped limit drives page size, offset and total page count alike.
// Count and page fetch run concurrently; they are independent reads.
func (s *Service) List(ctx context.Context, req ListRequest) (ProductPage, error) {
	page, limit := shared.NormalizePage(req.Page, req.Limit)
	offset := (page - 1) * limit

	var (
		total    int
		products []Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, req.Filters)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.repo.Page(gctx, req, limit, offset)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProductPage{}, err
	}
	if products == nil {
		products = []Product{}
	}
	return ProductPage{
		Data:       products,
		Pagination: shared.NewPagination(page, limit, total),
	}, nil
}

// Get returns the active product with ordered images, or shared.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// Categories returns active, in-stock product counts grouped by weight category.
func (s *Service) Categories(ctx context.Context) ([]AggregateCount, error) {
	var counts []AggregateCount
	err := s.cache.FetchJSON(ctx, keyCategories, &counts, func(ctx context.Context) (interface{}, error) {
		return s.repo.CountByWeight(ctx)
	})
	if counts == nil {
		counts = []AggregateCount{}
	}
	return counts, err
}

// Brands returns active, in-stock product counts grouped by brand, sorted
// alphabetically by brand name.
func (s *Service) Brands(ctx context.Context) ([]AggregateCount, error) {
	var counts []AggregateCount
	err := s.cache.FetchJSON(ctx, keyBrands, &counts, func(ctx context.Context) (interface{}, error) {
		brands, err := s.repo.CountByBrand(ctx)
		if err != nil {
			return nil, err
		}
		sort.Slice(brands, func(i, j int) bool {
			return s.collator.CompareString(brands[i].Name, brands[j].Name) < 0
		})
		return brands, nil
	})
	if counts == nil {
		counts = []AggregateCount{}
	}
	return counts, err
}

// Search returns up to 20 active matches for the free-text query.
func (s *Service) Search(ctx context.Context, query string) ([]Product, error) {
	products, err := s.repo.Search(ctx, query, searchResultLimit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}
