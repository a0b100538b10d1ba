package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/models"

	"github.com/rs/zerolog"
)

// StatusError reports a non-success HTTP status from the backend.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d for %s", e.Status, e.URL)
}

// Client is the data access layer over the remote JSON backend. It performs
// plain fetches and fire-once creates; retries and caching are out of scope.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logger,
	}
}

func (c *Client) FetchBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := c.getJSON(ctx, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts filters products server-side by name substring.
func (c *Client) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	query := url.Values{}
	query.Set("productName_like", q)

	var products []models.Product
	if err := c.getJSON(ctx, "/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindUsers looks up users matching the given credentials. An empty slice
// means no such user; the caller decides what that means.
func (c *Client) FindUsers(ctx context.Context, email, password string) ([]models.User, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("password", password)

	var users []models.User
	if err := c.getJSON(ctx, "/users", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := c.postJSON(ctx, "/users", user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *Client) FetchOrders(ctx context.Context, userID string) ([]models.Order, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var orders []models.Order
	if err := c.getJSON(ctx, "/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	if err := c.postJSON(ctx, "/orders", order, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", u).Msg("Backend request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", u).Msg("Backend returned non-success status")
		return &StatusError{URL: u, Status: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	u := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", u).Msg("Backend request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", u).Msg("Backend returned non-success status")
		return &StatusError{URL: u, Status: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
