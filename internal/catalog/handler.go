package catalog

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// Handler wires HTTP endpoints for the product catalog.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers catalog routes. optionalAuth attaches an identity
// when a valid bearer token is present but never rejects; the aggregate
// listings are fully public.
func (h *Handler) MountRoutes(r chi.Router, optionalAuth func(http.Handler) http.Handler) {
	r.Get("/categories/list", h.handleCategories)
	r.Get("/brands/list", h.handleBrands)
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/", h.handleList)
		r.Get("/search/query", h.handleSearch)
		r.Get("/{id}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	page, err := h.service.List(r.Context(), req)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, page)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, product)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Categories(r.Context())
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, counts)
}

func (h *Handler) handleBrands(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Brands(r.Context())
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, counts)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		shared.Fail(w, http.StatusBadRequest, "search query is required")
		return
	}
	products, err := h.service.Search(r.Context(), query)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, products)
}

// parseListRequest maps query-string parameters onto a ListRequest,
// rejecting values that do not parse.
func parseListRequest(r *http.Request) (ListRequest, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	req := ListRequest{
		Page:   1,
		Limit:  shared.DefaultLimit,
		SortBy: SortByName,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "must be a positive integer"
		} else {
			req.Page = page
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fields["limit"] = "must be a positive integer"
		} else {
			req.Limit = limit
		}
	}

	req.Filters.Search = q.Get("search")
	req.Filters.Brand = q.Get("brand")
	req.Filters.FiberContent = q.Get("fiberContent")

	if raw := q.Get("weightCategory"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				req.Filters.WeightCategories = append(req.Filters.WeightCategories, WeightCategory(part))
			}
		}
	}

	if raw := q.Get("minPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["minPrice"] = "must be a number"
		} else {
			req.Filters.MinPrice = &price
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["maxPrice"] = "must be a number"
		} else {
			req.Filters.MaxPrice = &price
		}
	}

	if raw := q.Get("inStock"); raw != "" {
		switch raw {
		case "true":
			inStock := true
			req.Filters.InStock = &inStock
		case "false":
			inStock := false
			req.Filters.InStock = &inStock
		default:
			fields["inStock"] = "must be true or false"
		}
	}

	if raw := q.Get("sortBy"); raw != "" {
		switch SortKey(raw) {
		case SortByName, SortByPrice, SortByCreatedAt:
			req.SortBy = SortKey(raw)
		default:
			fields["sortBy"] = "must be one of name, price, createdAt"
		}
	}
	if raw := q.Get("sortOrder"); raw != "" {
		switch raw {
		case "asc":
		case "desc":
			req.SortDesc = true
		default:
			fields["sortOrder"] = "must be asc or desc"
		}
	}

	if len(fields) > 0 {
		return ListRequest{}, shared.NewValidationError(fields)
	}
	return req, nil
}
