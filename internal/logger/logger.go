package logger

import (
	"stitchmes/internal/config"
	"stitchmes/internal/database"

	"go.uber.org/zap"
)

// NewLogger builds the zap logger and attaches the async DB sink
func NewLogger(cfg *config.Config, pg *database.PostgresDB) (*zap.Logger, error) {

	// 1. Setup Base Config (Console/JSON)
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	// 2. Create our Async DB Writer
	dbWriter := NewDBLogWriter(pg, cfg)

	// 3. Wrap the Core so entries go to both console and app_logs
	finalCore := NewDBCore(baseLogger.Core(), dbWriter)

	// 4. Return new Logger with AddCaller enabled
	return zap.New(finalCore, zap.AddCaller()), nil
}
