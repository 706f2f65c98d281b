package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/logger"
	"github.com/DeleoNey/Travel-Planner-API/internal/model"

	"go.uber.org/zap"
)

// Параметры поиска мест рядом с точкой маршрута: небольшой фиксированный
// радиус и фильтр достопримечательностей.
const (
	placesRadius     = 1000
	placesCategories = "tourism.sights"
)

// PointService связывает CRUD точек маршрута с проверкой владения и
// обогащением данными внешних сервисов (валюта, погода, места).
// Обогащение всегда best-effort: его сбой не срывает основную операцию.
type PointService struct {
	trips    TripStore
	points   PointStore
	guard    *OwnershipGuard
	currency BudgetConverter
	weather  WeatherProvider
	places   PlacesProvider
}

// NewPointService создает новый сервис точек маршрута.
func NewPointService(trips TripStore, points PointStore, guard *OwnershipGuard,
	currency BudgetConverter, weather WeatherProvider, places PlacesProvider) *PointService {
	return &PointService{
		trips:    trips,
		points:   points,
		guard:    guard,
		currency: currency,
		weather:  weather,
		places:   places,
	}
}

// PointInput - полный набор полей для создания или полного обновления точки.
type PointInput struct {
	City          string
	Country       string
	Date          model.Date
	PlannedBudget float64
	Latitude      float64
	Longitude     float64
}

// PointUpdate - частичное обновление точки: nil-поля остаются без изменений.
type PointUpdate struct {
	City          *string
	Country       *string
	Date          *model.Date
	PlannedBudget *float64
	Latitude      *float64
	Longitude     *float64
}

// List возвращает точки поездки с вычисленным местным бюджетом.
func (s *PointService) List(ctx context.Context, userID, tripID int) ([]model.TripPoint, error) {
	if _, err := s.loadTrip(userID, tripID); err != nil {
		return nil, err
	}
	points, err := s.points.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	for i := range points {
		s.enrichBudget(ctx, &points[i])
	}
	return points, nil
}

// Get возвращает одну точку поездки с вычисленным местным бюджетом.
func (s *PointService) Get(ctx context.Context, userID, tripID, pointID int) (*model.TripPoint, error) {
	if _, err := s.loadTrip(userID, tripID); err != nil {
		return nil, err
	}
	point, err := s.loadPoint(tripID, pointID)
	if err != nil {
		return nil, err
	}
	s.enrichBudget(ctx, point)
	return point, nil
}

// Create добавляет точку в поездку, предварительно проверяя инварианты
// даты посещения и координат.
func (s *PointService) Create(ctx context.Context, userID, tripID int, in PointInput) (*model.TripPoint, error) {
	trip, err := s.loadTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	if err := validatePoint(trip, in); err != nil {
		return nil, err
	}

	point := &model.TripPoint{
		TripID:        tripID,
		City:          in.City,
		Country:       in.Country,
		Date:          in.Date,
		PlannedBudget: in.PlannedBudget,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
	}
	id, err := s.points.Create(point)
	if err != nil {
		return nil, err
	}

	point, err = s.loadPoint(tripID, id)
	if err != nil {
		return nil, err
	}
	s.enrichBudget(ctx, point)
	return point, nil
}

// Update применяет частичное обновление к точке и заново проверяет инварианты.
func (s *PointService) Update(ctx context.Context, userID, tripID, pointID int, in PointUpdate) (*model.TripPoint, error) {
	trip, err := s.loadTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	point, err := s.loadPoint(tripID, pointID)
	if err != nil {
		return nil, err
	}

	if in.City != nil {
		point.City = *in.City
	}
	if in.Country != nil {
		point.Country = *in.Country
	}
	if in.Date != nil {
		point.Date = *in.Date
	}
	if in.PlannedBudget != nil {
		point.PlannedBudget = *in.PlannedBudget
	}
	if in.Latitude != nil {
		point.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		point.Longitude = *in.Longitude
	}

	merged := PointInput{
		City:          point.City,
		Country:       point.Country,
		Date:          point.Date,
		PlannedBudget: point.PlannedBudget,
		Latitude:      point.Latitude,
		Longitude:     point.Longitude,
	}
	if err := validatePoint(trip, merged); err != nil {
		return nil, err
	}

	if err := s.points.Update(point); err != nil {
		return nil, err
	}
	s.enrichBudget(ctx, point)
	return point, nil
}

// Delete удаляет точку из поездки.
func (s *PointService) Delete(userID, tripID, pointID int) error {
	if _, err := s.loadTrip(userID, tripID); err != nil {
		return err
	}
	if _, err := s.loadPoint(tripID, pointID); err != nil {
		return err
	}
	return s.points.Delete(tripID, pointID)
}

// PlacesNearby возвращает места рядом с точкой маршрута. Результат поиска,
// включая ошибку провайдера, передается вызывающему без изменений.
func (s *PointService) PlacesNearby(ctx context.Context, userID, tripID, pointID int) ([]integration.Place, error) {
	if _, err := s.loadTrip(userID, tripID); err != nil {
		return nil, err
	}
	point, err := s.loadPoint(tripID, pointID)
	if err != nil {
		return nil, err
	}
	return s.places.NearbyPlaces(ctx, point.Latitude, point.Longitude, placesRadius, placesCategories)
}

// Weather возвращает текущую погоду в точке маршрута. Любой сбой провайдера
// превращается в ErrWeatherNotFound - единая политика для этого ресурса.
func (s *PointService) Weather(ctx context.Context, userID, tripID, pointID int) (*integration.Weather, error) {
	if _, err := s.loadTrip(userID, tripID); err != nil {
		return nil, err
	}
	point, err := s.loadPoint(tripID, pointID)
	if err != nil {
		return nil, err
	}

	w, err := s.weather.CurrentWeather(ctx, point.Latitude, point.Longitude)
	if err != nil {
		logger.Get().Warn("погода для точки недоступна",
			zap.Int("trip_id", tripID), zap.Int("point_id", pointID), zap.Error(err))
		return nil, ErrWeatherNotFound
	}
	return w, nil
}

// enrichBudget вычисляет местный бюджет точки. Сбой пересчета оставляет
// поле пустым и не считается ошибкой запроса.
func (s *PointService) enrichBudget(ctx context.Context, p *model.TripPoint) {
	converted, err := s.currency.ConvertBudgetForCountry(ctx, p.PlannedBudget, p.Country)
	if err != nil {
		logger.Get().Debug("местный бюджет не вычислен",
			zap.Int("point_id", p.ID), zap.Error(err))
		p.LocalBudget = nil
		return
	}
	p.LocalBudget = &converted.ConvertedAmount
}

// loadTrip достает поездку и проверяет владение.
func (s *PointService) loadTrip(userID, tripID int) (*model.Trip, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поездки: %w", err)
	}
	if !s.guard.CanAccess(userID, trip) {
		return nil, ErrForbidden
	}
	return trip, nil
}

// loadPoint достает точку внутри поездки.
func (s *PointService) loadPoint(tripID, pointID int) (*model.TripPoint, error) {
	point, err := s.points.GetByID(tripID, pointID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении точки маршрута: %w", err)
	}
	return point, nil
}

// validatePoint проверяет инварианты точки: дата посещения внутри диапазона
// поездки, координаты в допустимых пределах.
func validatePoint(trip *model.Trip, in PointInput) error {
	if in.Date.IsZero() {
		return newValidationError("date", "visit date is required")
	}
	if in.Date.Before(trip.StartDate.Time) || in.Date.After(trip.EndDate.Time) {
		return newValidationError("date", fmt.Sprintf(
			"visit date must be between %s and %s",
			trip.StartDate.Format("2006-01-02"), trip.EndDate.Format("2006-01-02"),
		))
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return newValidationError("latitude", "latitude must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return newValidationError("longitude", "longitude must be between -180 and 180")
	}
	return nil
}
