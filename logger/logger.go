package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps request traces silent while deprecation notices remain visible.
const DefaultLevel = zapcore.WarnLevel

func NewProductionLogger() (*zap.Logger, error) {
	return NewLogger(DefaultLevel.String())
}

// NewLogger builds a production JSON logger at the given level name, e.g. "debug".
func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	return config.Build()
}

// NewDefaultLogger is the logger used by clients that are not given one.
func NewDefaultLogger() *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		DefaultLevel,
	)
	return Suggar(zap.New(core))
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
