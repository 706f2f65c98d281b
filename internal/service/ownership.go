package service

import (
	"github.com/DeleoNey/Travel-Planner-API/internal/model"
)

// OwnershipGuard решает, может ли пользователь читать и изменять объект.
// Поездка принадлежит пользователю напрямую, точка маршрута - транзитивно
// через родительскую поездку. Объекты неизвестной формы запрещаются всегда
// (fail closed).
type OwnershipGuard struct {
	trips TripStore
}

// NewOwnershipGuard создает проверку владения поверх хранилища поездок.
func NewOwnershipGuard(trips TripStore) *OwnershipGuard {
	return &OwnershipGuard{trips: trips}
}

// CanAccess возвращает true, только если obj принадлежит пользователю userID.
func (g *OwnershipGuard) CanAccess(userID int, obj any) bool {
	switch v := obj.(type) {
	case *model.Trip:
		return v != nil && v.UserID == userID
	case model.Trip:
		return v.UserID == userID
	case *model.TripPoint:
		if v == nil {
			return false
		}
		return g.ownsTrip(userID, v.TripID)
	case model.TripPoint:
		return g.ownsTrip(userID, v.TripID)
	default:
		return false
	}
}

func (g *OwnershipGuard) ownsTrip(userID, tripID int) bool {
	trip, err := g.trips.GetByID(tripID)
	if err != nil {
		return false
	}
	return trip.UserID == userID
}
