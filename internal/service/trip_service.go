package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"
)

// TripService содержит бизнес-логику, связанную с поездками.
type TripService struct {
	trips TripStore
	guard *OwnershipGuard
}

// NewTripService создает новый сервис поездок.
func NewTripService(trips TripStore, guard *OwnershipGuard) *TripService {
	return &TripService{trips: trips, guard: guard}
}

// TripInput - полный набор полей для создания или полного обновления поездки.
type TripInput struct {
	Title        string
	Description  *string
	StartDate    model.Date
	EndDate      model.Date
	BaseCurrency string
}

// TripUpdate - частичное обновление поездки: nil-поля остаются без изменений.
type TripUpdate struct {
	Title        *string
	Description  *string
	StartDate    *model.Date
	EndDate      *model.Date
	BaseCurrency *string
}

// Create создает новую поездку для пользователя.
func (s *TripService) Create(userID int, in TripInput) (*model.Trip, error) {
	if err := validateTripDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if in.BaseCurrency == "" {
		in.BaseCurrency = "USD"
	}

	trip := &model.Trip{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		BaseCurrency: in.BaseCurrency,
	}
	id, err := s.trips.Create(trip)
	if err != nil {
		return nil, err
	}
	return s.load(userID, id)
}

// List возвращает все поездки пользователя.
func (s *TripService) List(userID int) ([]model.Trip, error) {
	return s.trips.ListByUser(userID)
}

// Get возвращает поездку пользователя по идентификатору.
func (s *TripService) Get(userID, tripID int) (*model.Trip, error) {
	return s.load(userID, tripID)
}

// Update применяет частичное обновление к поездке и повторно проверяет
// инвариант диапазона дат.
func (s *TripService) Update(userID, tripID int, in TripUpdate) (*model.Trip, error) {
	trip, err := s.load(userID, tripID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		trip.Title = *in.Title
	}
	if in.Description != nil {
		trip.Description = in.Description
	}
	if in.StartDate != nil {
		trip.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		trip.EndDate = *in.EndDate
	}
	if in.BaseCurrency != nil {
		trip.BaseCurrency = *in.BaseCurrency
	}

	if err := validateTripDates(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}
	if err := s.trips.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete удаляет поездку вместе с ее точками маршрута.
func (s *TripService) Delete(userID, tripID int) error {
	if _, err := s.load(userID, tripID); err != nil {
		return err
	}
	return s.trips.Delete(tripID)
}

// load достает поездку и проверяет владение; отсутствие - ErrNotFound,
// чужая поездка - ErrForbidden.
func (s *TripService) load(userID, tripID int) (*model.Trip, error) {
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

func validateTripDates(start, end model.Date) error {
	if start.IsZero() {
		return newValidationError("start_date", "start date is required")
	}
	if end.IsZero() {
		return newValidationError("end_date", "end date is required")
	}
	if end.Before(start.Time) {
		return newValidationError("end_date", "end date must not be before start date")
	}
	return nil
}
