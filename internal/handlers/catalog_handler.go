package handlers

import (
	"net/http"
	"net/url"

	"storefront/internal/backend"
	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	backend  *backend.Client
	renderer *views.Renderer
	logger   zerolog.Logger
}

func NewCatalogHandler(client *backend.Client, renderer *views.Renderer, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		backend:  client,
		renderer: renderer,
		logger:   logger,
	}
}

type columnHeader struct {
	Display   string
	URL       string
	Indicator string
}

type catalogPage struct {
	Title         string
	Session       session.State
	Products      []models.Product
	Brands        []models.Brand
	Search        string
	SelectedBrand string
	SortBy        string
	SortOrder     catalog.SortOrder
	Columns       []columnHeader
	Message       string
}

// Products renders the admin catalog: search, brand dropdown and sortable
// columns, all carried in the query string.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("q")
	selectedBrand := query.Get("brand")
	sortBy := query.Get("sort")
	if sortBy == "" {
		sortBy = catalog.ColumnProductName
	}
	order := catalog.SortOrder(query.Get("order"))
	if order != catalog.Descending {
		order = catalog.Ascending
	}

	page := catalogPage{
		Title:         "Products",
		Session:       middleware.CurrentSession(r),
		Search:        search,
		SelectedBrand: selectedBrand,
		SortBy:        sortBy,
		SortOrder:     order,
		Columns:       buildColumns(search, selectedBrand, sortBy, order),
	}

	// Brands and categories are fetched before products so the product rows
	// can be enriched; any failure leaves the table empty but the page up.
	brands, err := h.backend.FetchBrands(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch brands")
		page.Message = "Unable to load products, please try again later"
		h.renderer.Render(w, http.StatusOK, "products", page)
		return
	}
	page.Brands = brands

	categories, err := h.backend.FetchCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch categories")
		page.Message = "Unable to load products, please try again later"
		h.renderer.Render(w, http.StatusOK, "products", page)
		return
	}

	products, err := h.backend.FetchProducts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch products")
		page.Message = "Unable to load products, please try again later"
		h.renderer.Render(w, http.StatusOK, "products", page)
		return
	}

	enriched := catalog.Enrich(products, brands, categories)
	filtered := catalog.Filter(enriched, search, selectedBrand)
	page.Products = catalog.SortedCopy(filtered, sortBy, order)

	h.renderer.Render(w, http.StatusOK, "products", page)
}

// buildColumns computes each header link: clicking the active column toggles
// the direction, any other column starts ascending again.
func buildColumns(search, brand, activeColumn string, activeOrder catalog.SortOrder) []columnHeader {
	columns := []struct {
		name    string
		display string
	}{
		{catalog.ColumnProductName, "Product Name"},
		{catalog.ColumnPrice, "Price"},
		{catalog.ColumnBrand, "Brand"},
		{catalog.ColumnCategory, "Category"},
		{catalog.ColumnRating, "Rating"},
	}

	headers := make([]columnHeader, 0, len(columns))
	for _, col := range columns {
		next := catalog.Ascending
		if col.name == activeColumn && activeOrder == catalog.Ascending {
			next = catalog.Descending
		}

		values := url.Values{}
		if search != "" {
			values.Set("q", search)
		}
		if brand != "" {
			values.Set("brand", brand)
		}
		values.Set("sort", col.name)
		values.Set("order", string(next))

		indicator := ""
		if col.name == activeColumn {
			if activeOrder == catalog.Ascending {
				indicator = "up"
			} else {
				indicator = "down"
			}
		}

		headers = append(headers, columnHeader{
			Display:   col.display,
			URL:       "/products?" + values.Encode(),
			Indicator: indicator,
		})
	}
	return headers
}
