package handlers

import (
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/rs/zerolog"
)

type StoreHandler struct {
	backend  *backend.Client
	renderer *views.Renderer
	logger   zerolog.Logger
}

func NewStoreHandler(client *backend.Client, renderer *views.Renderer, logger zerolog.Logger) *StoreHandler {
	return &StoreHandler{
		backend:  client,
		renderer: renderer,
		logger:   logger,
	}
}

type storePage struct {
	Title      string
	Session    session.State
	Brands     []models.Brand
	Categories []models.Category
	Visible    []models.Product
	Search     string
	BackQuery  string
	Message    string
}

// Store renders the shopping view. Search is applied server-side by the
// backend; the checkbox state comes from the submitted query, so the visible
// subset is always derived from the state the user just committed.
func (h *StoreHandler) Store(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("q")
	filtered := query.Get("f") == "1"

	page := storePage{
		Title:     "Store",
		Session:   middleware.CurrentSession(r),
		Search:    search,
		BackQuery: r.URL.RawQuery,
	}
	if query.Get("cartError") == "1" {
		page.Message = "Could not add the product to your cart, please try again"
	}

	brands, err := h.backend.FetchBrands(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch brands")
		page.Message = "Unable to load the store, please try again later"
		h.renderer.Render(w, http.StatusOK, "store", page)
		return
	}

	categories, err := h.backend.FetchCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch categories")
		page.Message = "Unable to load the store, please try again later"
		h.renderer.Render(w, http.StatusOK, "store", page)
		return
	}

	products, err := h.backend.SearchProducts(r.Context(), search)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch products")
		page.Message = "Unable to load the store, please try again later"
		h.renderer.Render(w, http.StatusOK, "store", page)
		return
	}

	// A fresh visit starts with every checkbox selected; once the filter form
	// has been submitted the submitted values are the whole truth.
	checkedBrands := checkedSet(query["brand"], !filtered)
	checkedCategories := checkedSet(query["category"], !filtered)

	for i := range brands {
		brands[i].IsChecked = !filtered || checkedBrands[brands[i].ID]
		checkedBrands[brands[i].ID] = brands[i].IsChecked
	}
	for i := range categories {
		categories[i].IsChecked = !filtered || checkedCategories[categories[i].ID]
		checkedCategories[categories[i].ID] = categories[i].IsChecked
	}

	enriched := catalog.Enrich(products, brands, categories)
	h.markOrdered(r, enriched)

	page.Brands = brands
	page.Categories = categories
	page.Visible = catalog.Visible(enriched, checkedBrands, checkedCategories)

	h.renderer.Render(w, http.StatusOK, "store", page)
}

// AddToCart posts a quantity-one pending order for the current user and
// returns to the store with the filters intact. A failed submit leaves the
// view unchanged apart from an error message.
func (h *StoreHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	productID := r.PostFormValue("productId")
	back := r.PostFormValue("back")
	state := middleware.CurrentSession(r)

	redirect := "/store"
	if back != "" {
		redirect += "?" + back
	}

	if productID == "" {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	_, err := h.backend.CreateOrder(r.Context(), models.Order{
		UserID:             state.UserID,
		ProductID:          productID,
		Quantity:           1,
		IsPaymentCompleted: false,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("product_id", productID).Msg("Failed to add product to cart")
		if back != "" {
			redirect += "&cartError=1"
		} else {
			redirect += "?cartError=1"
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	h.logger.Info().Str("user_id", state.UserID).Str("product_id", productID).Msg("Product added to cart")
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// markOrdered flags products already sitting in the user's cart. The cart
// lookup is best-effort: on failure the store still renders, just without the
// ordered badges.
func (h *StoreHandler) markOrdered(r *http.Request, products []models.Product) {
	state := middleware.CurrentSession(r)
	if !state.IsLoggedIn {
		return
	}

	orders, err := h.backend.FetchOrders(r.Context(), state.UserID)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch orders for cart state")
		return
	}

	inCart := make(map[string]bool)
	for _, o := range catalog.Cart(orders) {
		inCart[o.ProductID] = true
	}

	for i := range products {
		if inCart[products[i].ID] {
			products[i].IsOrdered = true
		}
	}
}

func checkedSet(ids []string, allChecked bool) map[string]bool {
	checked := make(map[string]bool)
	if allChecked {
		return checked
	}
	for _, id := range ids {
		checked[id] = true
	}
	return checked
}
