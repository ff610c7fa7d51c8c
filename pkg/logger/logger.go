package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

var global *zap.SugaredLogger = zap.NewNop().Sugar()

// InitGlobalLogger replaces the package-level logger with one built from cfg.
// Call once at startup before anything logs.
func InitGlobalLogger(cfg *Config) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	global = l.Sugar()
}

func Info(msg string, keysAndValues ...interface{}) {
	global.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	global.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	global.Errorw(msg, keysAndValues...)
}
