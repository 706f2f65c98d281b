package integration

// ErrorKind классифицирует сбои при обращении к внешним API.
type ErrorKind string

const (
	// KindHTTP - провайдер ответил неуспешным HTTP-статусом (неверный ключ, плохой запрос).
	KindHTTP ErrorKind = "http"
	// KindNetwork - сетевая ошибка или истекший таймаут.
	KindNetwork ErrorKind = "network"
	// KindDecode - ответ провайдера не удалось разобрать (неожиданная форма).
	KindDecode ErrorKind = "decode"
)

// ProviderError описывает сбой обращения к внешнему сервису.
// Клиенты интеграций никогда не паникуют: любой сбой возвращается
// такой структурированной ошибкой.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Message  string
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Message
}

func newProviderError(provider string, kind ErrorKind, message string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Message: message}
}
