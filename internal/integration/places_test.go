package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyPlaces_SortedByDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [
			{"properties": {"name": "Far", "distance": 50}},
			{"properties": {"name": "Near", "distance": 10}}
		]}`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "key")
	places, err := s.NearbyPlaces(context.Background(), 50.45, 30.52, 1000, "")
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "Near", places[0].Name)
	assert.Equal(t, 10.0, *places[0].Distance)
	assert.Equal(t, "Far", places[1].Name)
	assert.Equal(t, 50.0, *places[1].Distance)
}

func TestNearbyPlaces_MissingDistanceSortsLast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [
			{"properties": {"name": "NoDistance"}},
			{"properties": {"name": "WithDistance", "distance": 500}}
		]}`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "key")
	places, err := s.NearbyPlaces(context.Background(), 50.45, 30.52, 1000, "")
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "WithDistance", places[0].Name)
	assert.Equal(t, "NoDistance", places[1].Name)
	assert.Nil(t, places[1].Distance)
}

func TestNearbyPlaces_SparseRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [
			{"properties": {"name": "Museum", "city": "Kyiv", "postcode": "", "distance": 42}}
		]}`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "key")
	places, err := s.NearbyPlaces(context.Background(), 50.45, 30.52, 1000, "")
	require.NoError(t, err)
	require.Len(t, places, 1)

	// Пустые атрибуты опускаются из JSON-представления целиком.
	raw, err := json.Marshal(places[0])
	require.NoError(t, err)
	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))

	assert.Equal(t, "Museum", asMap["name"])
	assert.Equal(t, "Kyiv", asMap["city"])
	assert.NotContains(t, asMap, "postcode")
	assert.NotContains(t, asMap, "country")
	assert.NotContains(t, asMap, "street")
}

func TestNearbyPlaces_QueryParams(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"apiKey":     q.Get("apiKey"),
			"lat":        q.Get("lat"),
			"lon":        q.Get("lon"),
			"radius":     q.Get("radius"),
			"categories": q.Get("categories"),
		}
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "secret-key")
	_, err := s.NearbyPlaces(context.Background(), 50.45, 30.52, 1000, "tourism.sights")
	require.NoError(t, err)

	assert.Equal(t, "secret-key", got["apiKey"])
	assert.Equal(t, "50.45", got["lat"])
	assert.Equal(t, "30.52", got["lon"])
	assert.Equal(t, "1000", got["radius"])
	assert.Equal(t, "tourism.sights", got["categories"])
}

func TestNearbyPlaces_OmitsEmptyCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("categories"))
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "key")
	_, err := s.NearbyPlaces(context.Background(), 1, 2, 500, "")
	require.NoError(t, err)
}

func TestNearbyPlaces_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "bad-key")
	_, err := s.NearbyPlaces(context.Background(), 1, 2, 1000, "")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "places", provErr.Provider)
	assert.Equal(t, KindHTTP, provErr.Kind)
}

func TestNearbyPlaces_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := NewPlacesService(srv.URL, "key")
	_, err := s.NearbyPlaces(context.Background(), 1, 2, 1000, "")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindNetwork, provErr.Kind)
}

func TestNearbyPlaces_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	s := NewPlacesService(srv.URL, "key")
	_, err := s.NearbyPlaces(context.Background(), 1, 2, 1000, "")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindDecode, provErr.Kind)
}
