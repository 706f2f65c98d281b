package model

import "time"

// Trip представляет поездку пользователя: диапазон дат, базовая валюта бюджета
// и набор точек маршрута (точки удаляются каскадно вместе с поездкой).
type Trip struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"-"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	StartDate    Date      `db:"start_date" json:"start_date"`
	EndDate      Date      `db:"end_date" json:"end_date"`
	BaseCurrency string    `db:"base_currency" json:"base_currency"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
