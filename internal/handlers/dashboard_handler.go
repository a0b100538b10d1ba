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

type DashboardHandler struct {
	backend  *backend.Client
	renderer *views.Renderer
	logger   zerolog.Logger
}

func NewDashboardHandler(client *backend.Client, renderer *views.Renderer, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		backend:  client,
		renderer: renderer,
		logger:   logger,
	}
}

type dashboardPage struct {
	Title          string
	Session        session.State
	Cart           []models.Order
	PreviousOrders []models.Order
	Message        string
}

// Dashboard shows the user's orders split into the pending cart and the
// completed previous orders, each row resolved to its product.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := middleware.CurrentSession(r)
	page := dashboardPage{
		Title:   "Dashboard",
		Session: state,
	}

	orders, err := h.backend.FetchOrders(r.Context(), state.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch orders")
		page.Message = "Unable to load your orders, please try again later"
		h.renderer.Render(w, http.StatusOK, "dashboard", page)
		return
	}

	products, err := h.backend.FetchProducts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch products")
		page.Message = "Unable to load your orders, please try again later"
		h.renderer.Render(w, http.StatusOK, "dashboard", page)
		return
	}

	for i := range orders {
		product, ok := catalog.ProductByID(products, orders[i].ProductID)
		if !ok {
			product = models.Product{ProductName: "Unknown Product"}
		}
		orders[i].Product = product
	}

	page.Cart = catalog.Cart(orders)
	page.PreviousOrders = catalog.PreviousOrders(orders)

	h.renderer.Render(w, http.StatusOK, "dashboard", page)
}
