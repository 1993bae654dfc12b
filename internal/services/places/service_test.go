package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nearbyJSON = `{
	"status": "OK",
	"results": [
		{
			"place_id": "pid-1",
			"name": "Chipotle Mexican Grill",
			"types": ["restaurant", "food"],
			"vicinity": "123 Main St",
			"geometry": {"location": {"lat": 37.7751, "lng": -122.4194}}
		},
		{
			"place_id": "pid-2",
			"name": "Shell",
			"types": ["gas_station"],
			"vicinity": "456 Oak Ave",
			"geometry": {"location": {"lat": 37.7760, "lng": -122.4180}}
		}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Service) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc := NewService(Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Client:  ts.Client(),
	})
	return ts, svc
}

func TestFindNearby(t *testing.T) {
	_, svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(nearbyJSON))
	})

	found := svc.FindNearby(context.Background(), 37.7749, -122.4194, 500)
	require.Len(t, found, 2)

	assert.Equal(t, "Chipotle Mexican Grill", found[0].Name)
	assert.Equal(t, []string{"restaurant", "food"}, found[0].Types)
	assert.Equal(t, "123 Main St", found[0].FormattedAddress)
	assert.Greater(t, found[0].Distance, 0.0)
}

func TestFindNearby_FailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newTestServer(t, tt.handler)
			assert.Empty(t, svc.FindNearby(context.Background(), 37.7749, -122.4194, 500))
		})
	}
}

func TestFindNearby_NoAPIKey(t *testing.T) {
	svc := NewService(Config{})
	assert.Empty(t, svc.FindNearby(context.Background(), 37.7749, -122.4194, 500))
}

func TestFindPlaceFromText(t *testing.T) {
	_, svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/findplacefromtext/json", r.URL.Path)
		assert.Equal(t, "Chipotle near me", r.URL.Query().Get("input"))
		w.Write([]byte(`{
			"status": "OK",
			"candidates": [{
				"place_id": "pid-9",
				"name": "Chipotle Mexican Grill",
				"formatted_address": "123 Main St, San Francisco, CA",
				"types": ["restaurant"]
			}]
		}`))
	})

	place, err := svc.FindPlaceFromText(context.Background(), "Chipotle near me")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "pid-9", place.PlaceID)
	assert.Equal(t, []string{"restaurant"}, place.Types)
}

func TestFindPlaceFromText_NoMatch(t *testing.T) {
	_, svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "candidates": []}`))
	})

	place, err := svc.FindPlaceFromText(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestDistance(t *testing.T) {
	// San Francisco to Los Angeles is roughly 559 km.
	d := Distance(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 559000, d, 5000)

	assert.Equal(t, 0.0, Distance(37.7749, -122.4194, 37.7749, -122.4194))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "1.0 mi", FormatDistance(1609.344))
	assert.Equal(t, "164 ft", FormatDistance(50))
}
