package service

import "errors"

var (
	// ErrNotFound - запрошенная поездка или точка маршрута не существует.
	ErrNotFound = errors.New("not found")
	// ErrForbidden - объект принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")
	// ErrWeatherNotFound - погоду для точки получить не удалось.
	ErrWeatherNotFound = errors.New("weather not found")
	// ErrInvalidCredentials - неверное имя пользователя или пароль.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError описывает нарушение инварианта входных данных
// с указанием поля, в котором оно обнаружено.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
