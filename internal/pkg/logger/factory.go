package logger

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// InitZapLoggerFromConfig initializes the Zap logger from application
// configuration and installs it as the global logger.
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	zl, err := NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	}, nrApp)
	if err != nil {
		return nil, err
	}

	SetGlobalLogger(zl)
	return zl, nil
}
