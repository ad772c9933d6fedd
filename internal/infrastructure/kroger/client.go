package kroger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pricecart/backend/internal/domain"
	"golang.org/x/time/rate"
)

// The Kroger locations filter is capped to keep the per-store price
// fan-out bounded.
const maxStoreResults = 5

// Config holds tunables for the Kroger provider
type Config struct {
	RadiusMiles       int
	StoreLimit        int
	RequestsPerMinute int
}

// Provider talks to the Kroger catalog API. The bearer token obtained at
// construction is held read-only for the provider's lifetime; there is no
// refresh logic, re-authenticate by constructing a new provider.
type Provider struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	radiusMiles int
	storeLimit  int
	rateLimiter *rate.Limiter
}

// NewProvider performs the OAuth2 client-credentials exchange and returns a
// provider holding the resulting bearer token. A failed exchange surfaces
// as ErrProviderUnavailable.
func NewProvider(clientID, clientSecret, baseURL string, cfg Config) (*Provider, error) {
	storeLimit := cfg.StoreLimit
	if storeLimit <= 0 || storeLimit > maxStoreResults {
		storeLimit = maxStoreResults
	}
	radius := cfg.RadiusMiles
	if radius <= 0 {
		radius = 10
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	p := &Provider{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		radiusMiles: radius,
		storeLimit:  storeLimit,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5),
	}

	token, err := p.authenticate(clientID, clientSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	p.token = token

	log.Printf("[KROGER] authenticated against %s", p.baseURL)
	return p, nil
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "kroger"
}

// authenticate exchanges client credentials for a bearer token. The
// credential pair travels only in the basic-auth header and is never logged.
func (p *Provider) authenticate(clientID, clientSecret string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "product.compact")

	req, err := http.NewRequest(http.MethodPost, p.baseURL+"/connect/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+credentials)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp domain.KrogerTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	return tokenResp.AccessToken, nil
}

// doGet executes an authenticated GET against an API endpoint
func (p *Provider) doGet(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	if err := p.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKrogerAPIFailure, err)
	}

	return resp, nil
}

// FindStores resolves Kroger locations near a zip code, capped at five
// results. A non-success status or malformed payload yields an empty slice,
// never partial stores.
func (p *Provider) FindStores(ctx context.Context, zipCode string) ([]domain.Store, error) {
	if p.token == "" {
		return []domain.Store{}, nil
	}

	params := url.Values{}
	params.Set("filter.zipCode.near", zipCode)
	params.Set("filter.limit", strconv.Itoa(p.storeLimit))
	params.Set("filter.radiusInMiles", strconv.Itoa(p.radiusMiles))

	resp, err := p.doGet(ctx, "/locations", params)
	if err != nil {
		log.Printf("[KROGER] locations request failed: %v", err)
		return []domain.Store{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[KROGER] locations returned status %d: %s", resp.StatusCode, string(body))
		return []domain.Store{}, nil
	}

	var locResp domain.KrogerLocationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&locResp); err != nil {
		log.Printf("[KROGER] failed to decode locations response: %v", err)
		return []domain.Store{}, nil
	}

	stores := MapLocations(locResp.Data, p.storeLimit)
	log.Printf("[KROGER] resolved %d stores for zip %s", len(stores), zipCode)
	return stores, nil
}

// QuoteItem searches the store's catalog for the item and extracts the first
// result's listed regular price. Absent results, malformed payloads, and
// non-success statuses all degrade uniformly to an unknown-stock observation;
// this call never fails the aggregate comparison.
func (p *Provider) QuoteItem(ctx context.Context, item string, store domain.Store) domain.PriceObservation {
	display := domain.DisplayItemName(item)
	if p.token == "" {
		return domain.NewUnknownObservation(store, display)
	}

	params := url.Values{}
	params.Set("filter.term", domain.NormalizeItemQuery(item))
	params.Set("filter.locationId", store.LocationID)
	params.Set("filter.limit", "1")

	resp, err := p.doGet(ctx, "/products", params)
	if err != nil {
		log.Printf("[KROGER] product search failed for store %s: %v", store.LocationID, err)
		return domain.NewUnknownObservation(store, display)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[KROGER] products returned status %d for store %s", resp.StatusCode, store.LocationID)
		return domain.NewUnknownObservation(store, display)
	}

	var prodResp domain.KrogerProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&prodResp); err != nil {
		log.Printf("[KROGER] failed to decode products response for store %s: %v", store.LocationID, err)
		return domain.NewUnknownObservation(store, display)
	}

	return MapProductQuote(prodResp.Data, store, display)
}
