package catalog

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// Repository provides read access to the product catalog.
type Repository interface {
	Count(ctx context.Context, filters ListFilters) (int, error)
	Page(ctx context.Context, req ListRequest, limit, offset int) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	CountByWeight(ctx context.Context) ([]AggregateCount, error)
	CountByBrand(ctx context.Context) ([]AggregateCount, error)
	Search(ctx context.Context, query string, limit int) ([]Product, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, brand, colorway, description, price, weight_category, fiber_content, stock_quantity, is_active, created_at, updated_at`

// buildWhere composes the predicate shared by Count and Page. Only active
// products are eligible; every filter ANDs onto that, except the search
// clause which ORs across its fields internally.
func buildWhere(filters ListFilters) (string, []interface{}) {
	where := ` WHERE is_active = TRUE`
	args := []interface{}{}
	argCount := 0

	next := func() string {
		argCount++
		return "$" + strconv.Itoa(argCount)
	}

	if filters.Search != "" {
		p := next()
		where += ` AND (name ILIKE ` + p + ` OR brand ILIKE ` + p + ` OR colorway ILIKE ` + p + ` OR description ILIKE ` + p + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Brand != "" {
		where += ` AND brand ILIKE ` + next()
		args = append(args, "%"+filters.Brand+"%")
	}
	if len(filters.WeightCategories) > 0 {
		where += ` AND weight_category = ANY(` + next() + `)`
		categories := make([]string, len(filters.WeightCategories))
		for i, wc := range filters.WeightCategories {
			categories[i] = string(wc)
		}
		args = append(args, categories)
	}
	if filters.FiberContent != "" {
		where += ` AND fiber_content ILIKE ` + next()
		args = append(args, "%"+filters.FiberContent+"%")
	}
	if filters.MinPrice != nil {
		where += ` AND price >= ` + next()
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		where += ` AND price <= ` + next()
		args = append(args, *filters.MaxPrice)
	}
	if filters.InStock != nil {
		if *filters.InStock {
			where += ` AND stock_quantity > 0`
		} else {
			where += ` AND stock_quantity <= 0`
		}
	}
	return where, args
}

func sortClause(sortBy SortKey, desc bool) string {
	column := "name"
	switch sortBy {
	case SortByPrice:
		column = "price"
	case SortByCreatedAt:
		column = "created_at"
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// Count returns the number of products matching the filters.
func (r *repository) Count(ctx context.Context, filters ListFilters) (int, error) {
	where, args := buildWhere(filters)
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	return total, err
}

// Page returns one page of matching products with their images attached.
func (r *repository) Page(ctx context.Context, req ListRequest, limit, offset int) ([]Product, error) {
	where, args := buildWhere(req.Filters)
	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY ` + sortClause(req.SortBy, req.SortDesc) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns a single active product with ordered images, or shared.ErrNotFound.
func (r *repository) Get(ctx context.Context, id string) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = TRUE`
	products, err := r.queryProducts(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, shared.ErrNotFound
	}
	if err := r.attachImages(ctx, products, false); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// CountByWeight groups active, in-stock products by weight category.
func (r *repository) CountByWeight(ctx context.Context) ([]AggregateCount, error) {
	const query = `SELECT weight_category, COUNT(*) FROM products WHERE is_active = TRUE AND stock_quantity > 0 GROUP BY weight_category`
	return r.queryCounts(ctx, query)
}

// CountByBrand groups active, in-stock products by brand. Callers sort.
func (r *repository) CountByBrand(ctx context.Context) ([]AggregateCount, error) {
	const query = `SELECT brand, COUNT(*) FROM products WHERE is_active = TRUE AND stock_quantity > 0 GROUP BY brand`
	return r.queryCounts(ctx, query)
}

// Search returns up to limit active products matching the free-text query
// across the listing's OR fields plus fiber content, with only the primary
// image on each.
func (r *repository) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	const sql = `SELECT ` + productColumns + ` FROM products
		WHERE is_active = TRUE
		AND (name ILIKE $1 OR brand ILIKE $1 OR colorway ILIKE $1 OR description ILIKE $1 OR fiber_content ILIKE $1)
		LIMIT $2`
	products, err := r.queryProducts(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, products, true); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Colorway, &p.Description, &p.Price,
			&p.WeightCategory, &p.FiberContent, &p.StockQuantity, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Images = []ProductImage{}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) queryCounts(ctx context.Context, query string) ([]AggregateCount, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []AggregateCount{}
	for rows.Next() {
		var c AggregateCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// attachImages loads images for the given products ordered by their explicit
// order field. With primaryOnly set, only the first-ordered image per product
// is attached.
func (r *repository) attachImages(ctx context.Context, products []Product, primaryOnly bool) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	query := `SELECT product_id, id, url, alt_text, is_main, "order" FROM product_images WHERE product_id = ANY($1) ORDER BY product_id, "order" ASC`
	if primaryOnly {
		query = `SELECT DISTINCT ON (product_id) product_id, id, url, alt_text, is_main, "order" FROM product_images WHERE product_id = ANY($1) ORDER BY product_id, "order" ASC`
	}

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		var img ProductImage
		if err := rows.Scan(&productID, &img.ID, &img.URL, &img.AltText, &img.IsMain, &img.Order); err != nil {
			return err
		}
		if i, ok := index[productID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	return rows.Err()
}
