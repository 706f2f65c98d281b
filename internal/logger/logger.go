package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init инициализирует глобальный логгер приложения.
// В окружении "development" используется человекочитаемый вывод,
// иначе - production-конфигурация zap (JSON).
func Init(env, level string) error {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	var err error
	log, err = cfg.Build()
	return err
}

// Get возвращает глобальный логгер. До вызова Init (например, в тестах)
// возвращается no-op логгер.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync сбрасывает буферизованные записи логгера.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
