// Package backend est le client REST du backend e-commerce. Le storefront ne
// possède aucune donnée produit/commande : tout passe par ces appels, avec le
// token de session opaque en header X-Session-ID. Aucun retry, aucun backoff :
// l'appelant décide quoi faire de l'échec.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cedra_front_end/internal/models"
)

// SessionHeader est le header attendu par le backend pour les appels authentifiés.
const SessionHeader = "X-Session-ID"

type Config struct {
	BaseURL string
}

type Client struct {
	client *http.Client
	config Config
}

func NewClient(cfg Config) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: cfg,
	}
}

// Products récupère la liste de produits filtrée.
func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := url.Values{}
	if filter.Featured {
		q.Set("featured", "true")
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", q, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product récupère le détail d'un produit.
func (c *Client) Product(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID), nil, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories récupère les catégories du catalogue.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Profile échange le token de session contre le profil utilisateur.
func (c *Client) Profile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExchangeSession échange le session_id du callback de login contre un token
// longue durée et le profil associé.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (string, *models.User, error) {
	q := url.Values{}
	q.Set("session_id", sessionID)

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/session", q, "", nil, &resp); err != nil {
		return "", nil, err
	}
	return resp.SessionToken, &resp.User, nil
}

// CreateOrder soumet la commande au backend.
func (c *Client) CreateOrder(ctx context.Context, token string, order models.OrderCreate) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, token, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Orders récupère l'historique de commandes de l'utilisateur.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order récupère une commande précise.
func (c *Client) Order(ctx context.Context, token, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ValidatePromoCode vérifie un code promo ; erreur 404 si invalide ou expiré.
func (c *Client) ValidatePromoCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := c.do(ctx, http.MethodGet, "/api/promo-codes/"+url.PathEscape(code), nil, "", nil, &promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	fullURL := c.config.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Detail == "" {
			data, _ := io.ReadAll(resp.Body)
			apiErr.Detail = string(data)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
