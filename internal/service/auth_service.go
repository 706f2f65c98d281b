package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// AuthService отвечает за регистрацию и авторизацию пользователей.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(users UserStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// RegisterInput - данные регистрации нового пользователя.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

// Register регистрирует нового пользователя: проверяет совпадение паролей,
// хеширует пароль bcrypt и сохраняет запись. Ошибки уникальности имени/email
// приходят из хранилища (repository.ErrDuplicateUsername и др.).
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	if in.Password != in.Password2 {
		return nil, newValidationError("password2", "passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	id, err := s.users.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login проверяет имя пользователя и пароль и выпускает JWT-токен доступа.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("не удалось выпустить токен: %w", err)
	}
	return token, user, nil
}
