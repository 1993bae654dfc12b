// Package places looks up merchants near a coordinate via the Google
// Places API. The recommendation engine only consumes the name and types
// of each result; lookup failures degrade to empty results so a places
// outage never breaks the wallet.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api"
	// DefaultRadius is the nearby-search radius in meters when the caller
	// does not specify one.
	DefaultRadius = 500

	cacheTTL = 2 * time.Minute
)

// Cache is the subset of the cache service the adapter needs. A nil cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Service finds candidate merchants for the recommendation flow.
type Service interface {
	// FindNearby returns merchants around a coordinate, possibly empty.
	// Network or decoding failures are logged and yield an empty slice.
	FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) []models.Place

	// FindPlaceFromText resolves a free-text query (address or merchant
	// name) to the best-matching place, or nil when nothing matches.
	FindPlaceFromText(ctx context.Context, query string) (*models.Place, error)
}

type service struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   Cache
}

// Config holds the adapter's settings. BaseURL and Client default to the
// Google endpoint and a 10s-timeout client.
type Config struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Cache   Cache
}

func NewService(cfg Config) Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &service{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  cfg.Client,
		cache:   cfg.Cache,
	}
}

type nearbyResponse struct {
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		Vicinity string   `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

func (s *service) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) []models.Place {
	if s.apiKey == "" {
		log.Println("places: no API key configured, returning no results")
		return nil
	}
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadius
	}

	cacheKey := fmt.Sprintf("places:nearby:%.4f:%.4f:%d", lat, lng, radiusMeters)
	if s.cache != nil {
		var cached []models.Place
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return cached
		}
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("key", s.apiKey)

	var resp nearbyResponse
	if err := s.getJSON(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		log.Printf("places: nearby search failed: %v", err)
		return nil
	}

	found := make([]models.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		p := models.Place{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Types:            r.Types,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
			FormattedAddress: r.Vicinity,
		}
		p.Distance = Distance(lat, lng, p.Lat, p.Lng)
		found = append(found, p)
	}

	if s.cache != nil && len(found) > 0 {
		if err := s.cache.SetWithTTL(ctx, cacheKey, found, cacheTTL); err != nil {
			log.Printf("places: failed to cache nearby results: %v", err)
		}
	}
	return found
}

type findPlaceResponse struct {
	Candidates []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
	} `json:"candidates"`
	Status string `json:"status"`
}

func (s *service) FindPlaceFromText(ctx context.Context, query string) (*models.Place, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("places API key not configured")
	}

	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name,formatted_address,types")
	params.Set("key", s.apiKey)

	var resp findPlaceResponse
	if err := s.getJSON(ctx, "/place/findplacefromtext/json", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, nil
	}

	best := resp.Candidates[0]
	return &models.Place{
		PlaceID:          best.PlaceID,
		Name:             best.Name,
		Types:            best.Types,
		FormattedAddress: best.FormattedAddress,
	}, nil
}

func (s *service) getJSON(ctx context.Context, path string, params url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}
