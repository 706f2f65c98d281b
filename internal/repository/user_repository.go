package repository

import (
	"errors"
	"fmt"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrDuplicateUsername возвращается при попытке создать пользователя с занятым именем.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail возвращается при попытке создать пользователя с занятым email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданного пользователя.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (username, email, password_hash, first_name, last_name)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName).Scan(&id)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return 0, dup
		}
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByUsername ищет пользователя по имени. Возвращает sql.ErrNoRows, если не найдено.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE username=$1", username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// duplicateError распознает нарушение уникальных ограничений PostgreSQL (код 23505).
func duplicateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case "users_username_key":
		return ErrDuplicateUsername
	case "users_email_key":
		return ErrDuplicateEmail
	}
	return fmt.Errorf("нарушение уникальности: %s", pqErr.Constraint)
}
