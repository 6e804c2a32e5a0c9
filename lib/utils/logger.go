package utils

import (
	"strings"

	"go.uber.org/zap"
)

// SetupLogger builds the development logger at the given level. Unknown
// levels fall back to info.
func SetupLogger(level string) *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	atomicLevel, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config.Level = atomicLevel

	logger := zap.Must(config.Build())
	return logger.Sugar()
}
