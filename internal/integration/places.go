package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/DeleoNey/Travel-Planner-API/internal/logger"

	"go.uber.org/zap"
)

// distanceSentinel подставляется вместо отсутствующей дистанции при
// сортировке: такие места уходят в конец списка.
const distanceSentinel = 999999

// Place - нормализованное место рядом с точкой маршрута.
// Пустые атрибуты ответа провайдера опускаются целиком, а не заполняются null.
type Place struct {
	Name        string   `json:"name,omitempty"`
	Country     string   `json:"country,omitempty"`
	City        string   `json:"city,omitempty"`
	Postcode    string   `json:"postcode,omitempty"`
	District    string   `json:"district,omitempty"`
	Suburb      string   `json:"suburb,omitempty"`
	Quarter     string   `json:"quarter,omitempty"`
	Street      string   `json:"street,omitempty"`
	HouseNumber string   `json:"housenumber,omitempty"`
	Formatted   string   `json:"formatted,omitempty"`
	Distance    *float64 `json:"distance,omitempty"`
}

// PlacesService ищет места рядом с заданными координатами через geo-places API.
type PlacesService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewPlacesService создает сервис поиска мест. Таймаут запроса фиксирован - 5 секунд.
func NewPlacesService(baseURL, apiKey string) *PlacesService {
	return &PlacesService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// NearbyPlaces возвращает места в радиусе radius метров от точки,
// отсортированные по возрастанию дистанции. categories - необязательный
// фильтр категорий провайдера. Любой сбой возвращается как *ProviderError.
func (s *PlacesService) NearbyPlaces(ctx context.Context, lat, lon float64, radius int, categories string) ([]Place, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))
	if categories != "" {
		params.Set("categories", categories)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, newProviderError("places", KindNetwork, err.Error())
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Get().Warn("сервис поиска мест недоступен", zap.Error(err))
		return nil, newProviderError("places", KindNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Warn("сервис поиска мест ответил ошибкой", zap.Int("status", resp.StatusCode))
		return nil, newProviderError("places", KindHTTP, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload struct {
		Features []struct {
			Properties struct {
				Name        string   `json:"name"`
				Country     string   `json:"country"`
				City        string   `json:"city"`
				Postcode    string   `json:"postcode"`
				District    string   `json:"district"`
				Suburb      string   `json:"suburb"`
				Quarter     string   `json:"quarter"`
				Street      string   `json:"street"`
				HouseNumber string   `json:"housenumber"`
				Formatted   string   `json:"formatted"`
				Distance    *float64 `json:"distance"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newProviderError("places", KindDecode, err.Error())
	}

	places := make([]Place, 0, len(payload.Features))
	for _, feature := range payload.Features {
		p := feature.Properties
		places = append(places, Place{
			Name:        p.Name,
			Country:     p.Country,
			City:        p.City,
			Postcode:    p.Postcode,
			District:    p.District,
			Suburb:      p.Suburb,
			Quarter:     p.Quarter,
			Street:      p.Street,
			HouseNumber: p.HouseNumber,
			Formatted:   p.Formatted,
			Distance:    p.Distance,
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return placeDistance(places[i]) < placeDistance(places[j])
	})

	return places, nil
}

func placeDistance(p Place) float64 {
	if p.Distance == nil {
		return distanceSentinel
	}
	return *p.Distance
}
