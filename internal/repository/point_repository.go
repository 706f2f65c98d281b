package repository

import (
	"fmt"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"

	"github.com/jmoiron/sqlx"
)

// PointRepository обеспечивает доступ к данным точек маршрута в базе данных.
type PointRepository struct {
	db *sqlx.DB
}

// NewPointRepository создает новый репозиторий для точек маршрута.
func NewPointRepository(db *sqlx.DB) *PointRepository {
	return &PointRepository{db: db}
}

// Create добавляет точку маршрута в поездку. Возвращает ID созданной точки.
func (r *PointRepository) Create(p *model.TripPoint) (int, error) {
	query := `INSERT INTO trip_points (trip_id, city, country, date, planned_budget, latitude, longitude)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := r.db.QueryRow(query,
		p.TripID, p.City, p.Country, p.Date, p.PlannedBudget, p.Latitude, p.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать точку маршрута: %w", err)
	}
	return id, nil
}

// ListByTrip возвращает все точки указанной поездки в порядке посещения.
func (r *PointRepository) ListByTrip(tripID int) ([]model.TripPoint, error) {
	points := []model.TripPoint{}
	err := r.db.Select(&points, "SELECT * FROM trip_points WHERE trip_id=$1 ORDER BY date, id", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении точек маршрута: %w", err)
	}
	return points, nil
}

// GetByID возвращает точку маршрута внутри конкретной поездки.
// Возвращает sql.ErrNoRows, если точка не найдена или принадлежит другой поездке.
func (r *PointRepository) GetByID(tripID, pointID int) (*model.TripPoint, error) {
	var p model.TripPoint
	err := r.db.Get(&p, "SELECT * FROM trip_points WHERE id=$1 AND trip_id=$2", pointID, tripID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update сохраняет изменённые поля точки маршрута.
func (r *PointRepository) Update(p *model.TripPoint) error {
	query := `UPDATE trip_points
	          SET city=$1, country=$2, date=$3, planned_budget=$4, latitude=$5, longitude=$6
	          WHERE id=$7 AND trip_id=$8`
	_, err := r.db.Exec(query,
		p.City, p.Country, p.Date, p.PlannedBudget, p.Latitude, p.Longitude, p.ID, p.TripID,
	)
	if err != nil {
		return fmt.Errorf("не удалось обновить точку маршрута: %w", err)
	}
	return nil
}

// Delete удаляет точку маршрута из поездки.
func (r *PointRepository) Delete(tripID, pointID int) error {
	_, err := r.db.Exec("DELETE FROM trip_points WHERE id=$1 AND trip_id=$2", pointID, tripID)
	if err != nil {
		return fmt.Errorf("не удалось удалить точку маршрута: %w", err)
	}
	return nil
}
