package model

import "time"

// TripPoint представляет отдельную точку маршрута внутри поездки.
// Поле LocalBudget вычисляется при выдаче (бюджет в валюте страны посещения)
// и не хранится в базе данных.
type TripPoint struct {
	ID            int       `db:"id" json:"id"`
	TripID        int       `db:"trip_id" json:"trip"`
	City          string    `db:"city" json:"city"`
	Country       string    `db:"country" json:"country"`
	Date          Date      `db:"date" json:"date"`
	PlannedBudget float64   `db:"planned_budget" json:"planned_budget"`
	LocalBudget   *string   `db:"-" json:"local_budget"`
	Latitude      float64   `db:"latitude" json:"latitude"`
	Longitude     float64   `db:"longitude" json:"longitude"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
