package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	base *zap.Logger
)

// L returns the shared application logger. Falls back to a no-op logger if
// construction fails so callers never need to nil-check.
func L() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stdout"}
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"

		var err error
		base, err = cfg.Build(zap.AddCaller())
		if err != nil {
			base = zap.NewNop()
		}
	})
	return base
}

// S returns the sugared form of the shared logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}
