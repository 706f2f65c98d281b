package handler

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/model"
	"github.com/DeleoNey/Travel-Planner-API/internal/service"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Фейковые хранилища и провайдеры для сборки сервисов в тестах.

type memTripStore struct {
	trips  map[int]*model.Trip
	nextID int
}

func newMemTripStore(trips ...*model.Trip) *memTripStore {
	s := &memTripStore{trips: map[int]*model.Trip{}, nextID: 1}
	for _, t := range trips {
		s.trips[t.ID] = t
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *memTripStore) Create(trip *model.Trip) (int, error) {
	trip.ID = s.nextID
	s.nextID++
	s.trips[trip.ID] = trip
	return trip.ID, nil
}

func (s *memTripStore) GetByID(id int) (*model.Trip, error) {
	trip, ok := s.trips[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return trip, nil
}

func (s *memTripStore) ListByUser(userID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	for _, t := range s.trips {
		if t.UserID == userID {
			trips = append(trips, *t)
		}
	}
	return trips, nil
}

func (s *memTripStore) Update(trip *model.Trip) error {
	s.trips[trip.ID] = trip
	return nil
}

func (s *memTripStore) Delete(id int) error {
	delete(s.trips, id)
	return nil
}

type memPointStore struct {
	points map[int]*model.TripPoint
	nextID int
}

func newMemPointStore(points ...*model.TripPoint) *memPointStore {
	s := &memPointStore{points: map[int]*model.TripPoint{}, nextID: 1}
	for _, p := range points {
		s.points[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *memPointStore) Create(p *model.TripPoint) (int, error) {
	p.ID = s.nextID
	s.nextID++
	s.points[p.ID] = p
	return p.ID, nil
}

func (s *memPointStore) ListByTrip(tripID int) ([]model.TripPoint, error) {
	points := []model.TripPoint{}
	for _, p := range s.points {
		if p.TripID == tripID {
			points = append(points, *p)
		}
	}
	return points, nil
}

func (s *memPointStore) GetByID(tripID, pointID int) (*model.TripPoint, error) {
	p, ok := s.points[pointID]
	if !ok || p.TripID != tripID {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (s *memPointStore) Update(p *model.TripPoint) error {
	s.points[p.ID] = p
	return nil
}

func (s *memPointStore) Delete(tripID, pointID int) error {
	delete(s.points, pointID)
	return nil
}

type stubConverter struct {
	result *integration.ConvertedBudget
	err    error
}

func (f *stubConverter) ConvertBudgetForCountry(context.Context, float64, string) (*integration.ConvertedBudget, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type stubWeather struct {
	result *integration.Weather
	err    error
}

func (f *stubWeather) CurrentWeather(context.Context, float64, float64) (*integration.Weather, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type testEnv struct {
	router   *gin.Engine
	trips    *memTripStore
	points   *memPointStore
	currency *stubConverter
	weather  *stubWeather
	places   service.PlacesProvider
}

// newTestEnv собирает маршрутизатор с реальными сервисами поверх фейков.
// Аутентификация подменяется: actorID кладется в контекст напрямую.
func newTestEnv(actorID int, trips *memTripStore, points *memPointStore, places service.PlacesProvider) *testEnv {
	env := &testEnv{
		trips:  trips,
		points: points,
		currency: &stubConverter{result: &integration.ConvertedBudget{
			OriginalAmount:   100,
			OriginalCurrency: "USD",
			ConvertedAmount:  "4000.00 UAH",
		}},
		weather: &stubWeather{result: &integration.Weather{Temperature: 20, Description: "clear sky"}},
		places:  places,
	}

	guard := service.NewOwnershipGuard(trips)
	tripService := service.NewTripService(trips, guard)
	pointService := service.NewPointService(trips, points, guard, env.currency, env.weather, env.places)
	h := NewHandler(nil, tripService, pointService)

	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set("userID", actorID)
	})
	{
		api.GET("/trips", h.ListTrips)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/:trip_id", h.GetTrip)
		api.PUT("/trips/:trip_id", h.UpdateTrip)
		api.PATCH("/trips/:trip_id", h.PatchTrip)
		api.DELETE("/trips/:trip_id", h.DeleteTrip)

		api.GET("/trips/:trip_id/points", h.ListPoints)
		api.POST("/trips/:trip_id/points", h.CreatePoint)
		api.GET("/trips/:trip_id/points/:id", h.GetPoint)
		api.PUT("/trips/:trip_id/points/:id", h.UpdatePoint)
		api.PATCH("/trips/:trip_id/points/:id", h.PatchPoint)
		api.DELETE("/trips/:trip_id/points/:id", h.DeletePoint)
		api.GET("/trips/:trip_id/points/:id/places-nearby", h.PlacesNearby)
		api.GET("/trips/:trip_id/points/:id/weather", h.WeatherForPoint)
	}
	env.router = router
	return env
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func seedTrip() *model.Trip {
	return &model.Trip{
		ID:           1,
		UserID:       1,
		Title:        "Test Trip",
		StartDate:    model.NewDate(2024, time.January, 1),
		EndDate:      model.NewDate(2024, time.January, 10),
		BaseCurrency: "USD",
	}
}

func seedPoint() *model.TripPoint {
	return &model.TripPoint{
		ID:            1,
		TripID:        1,
		City:          "Kyiv",
		Country:       "Ukraine",
		Date:          model.NewDate(2024, time.January, 5),
		PlannedBudget: 100,
		Latitude:      50.45,
		Longitude:     30.52,
	}
}
