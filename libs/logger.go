package libs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until InitLogger runs,
// so packages can log from tests without setup.
var Log = zap.NewNop()

func InitLogger(appEnv string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if appEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	Log = logger
	zap.ReplaceGlobals(logger)
	return nil
}

func SyncLogger() {
	_ = Log.Sync()
}
