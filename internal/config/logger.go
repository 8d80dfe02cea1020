package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel maps a verbosity setting to a zap level.
func LogLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.ErrorLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// NewLogger builds a console logger writing to cfg.LogFile. Without a log
// stream the logger discards everything.
func NewLogger(cfg *Config) *zap.Logger {
	if cfg.LogFile == nil {
		return zap.NewNop()
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(cfg.LogFile),
		LogLevel(cfg.Verbosity),
	)
	return zap.New(core)
}
