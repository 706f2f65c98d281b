package service

import (
	"context"

	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/model"
)

// UserStore описывает хранилище пользователей, используемое сервисами.
type UserStore interface {
	Create(user *model.User) (int, error)
	GetByUsername(username string) (*model.User, error)
}

// TripStore описывает хранилище поездок, используемое сервисами.
type TripStore interface {
	Create(trip *model.Trip) (int, error)
	GetByID(id int) (*model.Trip, error)
	ListByUser(userID int) ([]model.Trip, error)
	Update(trip *model.Trip) error
	Delete(id int) error
}

// PointStore описывает хранилище точек маршрута, используемое сервисами.
type PointStore interface {
	Create(p *model.TripPoint) (int, error)
	ListByTrip(tripID int) ([]model.TripPoint, error)
	GetByID(tripID, pointID int) (*model.TripPoint, error)
	Update(p *model.TripPoint) error
	Delete(tripID, pointID int) error
}

// BudgetConverter пересчитывает бюджет в валюту страны посещения.
type BudgetConverter interface {
	ConvertBudgetForCountry(ctx context.Context, amount float64, country string) (*integration.ConvertedBudget, error)
}

// WeatherProvider возвращает текущую погоду по координатам.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*integration.Weather, error)
}

// PlacesProvider ищет места рядом с координатами.
type PlacesProvider interface {
	NearbyPlaces(ctx context.Context, lat, lon float64, radius int, categories string) ([]integration.Place, error)
}
