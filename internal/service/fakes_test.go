package service

import (
	"context"
	"database/sql"

	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/model"
)

type fakeTripStore struct {
	trips  map[int]*model.Trip
	nextID int
	err    error
}

func newFakeTripStore(trips ...*model.Trip) *fakeTripStore {
	s := &fakeTripStore{trips: map[int]*model.Trip{}, nextID: 1}
	for _, t := range trips {
		s.trips[t.ID] = t
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *fakeTripStore) Create(trip *model.Trip) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	trip.ID = s.nextID
	s.nextID++
	s.trips[trip.ID] = trip
	return trip.ID, nil
}

func (s *fakeTripStore) GetByID(id int) (*model.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	trip, ok := s.trips[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return trip, nil
}

func (s *fakeTripStore) ListByUser(userID int) ([]model.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	trips := []model.Trip{}
	for _, t := range s.trips {
		if t.UserID == userID {
			trips = append(trips, *t)
		}
	}
	return trips, nil
}

func (s *fakeTripStore) Update(trip *model.Trip) error {
	if s.err != nil {
		return s.err
	}
	s.trips[trip.ID] = trip
	return nil
}

func (s *fakeTripStore) Delete(id int) error {
	if s.err != nil {
		return s.err
	}
	delete(s.trips, id)
	return nil
}

type fakePointStore struct {
	points map[int]*model.TripPoint
	nextID int
}

func newFakePointStore(points ...*model.TripPoint) *fakePointStore {
	s := &fakePointStore{points: map[int]*model.TripPoint{}, nextID: 1}
	for _, p := range points {
		s.points[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *fakePointStore) Create(p *model.TripPoint) (int, error) {
	p.ID = s.nextID
	s.nextID++
	s.points[p.ID] = p
	return p.ID, nil
}

func (s *fakePointStore) ListByTrip(tripID int) ([]model.TripPoint, error) {
	points := []model.TripPoint{}
	for _, p := range s.points {
		if p.TripID == tripID {
			points = append(points, *p)
		}
	}
	return points, nil
}

func (s *fakePointStore) GetByID(tripID, pointID int) (*model.TripPoint, error) {
	p, ok := s.points[pointID]
	if !ok || p.TripID != tripID {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (s *fakePointStore) Update(p *model.TripPoint) error {
	s.points[p.ID] = p
	return nil
}

func (s *fakePointStore) Delete(tripID, pointID int) error {
	p, ok := s.points[pointID]
	if ok && p.TripID == tripID {
		delete(s.points, pointID)
	}
	return nil
}

type fakeConverter struct {
	result *integration.ConvertedBudget
	err    error
	calls  int
}

func (f *fakeConverter) ConvertBudgetForCountry(_ context.Context, amount float64, country string) (*integration.ConvertedBudget, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeWeatherProvider struct {
	result *integration.Weather
	err    error
}

func (f *fakeWeatherProvider) CurrentWeather(_ context.Context, lat, lon float64) (*integration.Weather, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakePlacesProvider struct {
	result        []integration.Place
	err           error
	gotLat        float64
	gotLon        float64
	gotRadius     int
	gotCategories string
}

func (f *fakePlacesProvider) NearbyPlaces(_ context.Context, lat, lon float64, radius int, categories string) ([]integration.Place, error) {
	f.gotLat, f.gotLon = lat, lon
	f.gotRadius = radius
	f.gotCategories = categories
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
