package repository

import (
	"fmt"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий для поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create создает новую поездку для указанного пользователя. Возвращает ID поездки.
func (r *TripRepository) Create(trip *model.Trip) (int, error) {
	query := `INSERT INTO trips (user_id, title, description, start_date, end_date, base_currency)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query,
		trip.UserID, trip.Title, trip.Description,
		trip.StartDate, trip.EndDate, trip.BaseCurrency,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return id, nil
}

// GetByID возвращает поездку по идентификатору. Возвращает sql.ErrNoRows, если не найдено.
func (r *TripRepository) GetByID(id int) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUser возвращает все поездки указанного пользователя.
func (r *TripRepository) ListByUser(userID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips WHERE user_id=$1 ORDER BY start_date, id", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}

// Update сохраняет изменённые поля поездки.
func (r *TripRepository) Update(trip *model.Trip) error {
	query := `UPDATE trips
	          SET title=$1, description=$2, start_date=$3, end_date=$4, base_currency=$5, updated_at=now()
	          WHERE id=$6`
	_, err := r.db.Exec(query,
		trip.Title, trip.Description, trip.StartDate, trip.EndDate, trip.BaseCurrency, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("не удалось обновить поездку: %w", err)
	}
	return nil
}

// Delete удаляет поездку; точки маршрута удаляются каскадно на уровне БД.
func (r *TripRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM trips WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить поездку: %w", err)
	}
	return nil
}
