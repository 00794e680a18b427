package logger

import (
	"database/sql"
	"fmt"
	"time"

	"stitchmes/internal/config"
	"stitchmes/internal/database"

	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	RequestId string
	Caller    string // Function name
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *sql.DB
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(pg *database.PostgresDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      pg.DB,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   cfg.AppId,
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log rather than block the request path
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		levelId := mapLevelToInt(entry.Level)

		// Insert into app_logs (errors are ignored to keep the app running)
		_, _ = w.db.Exec(
			`INSERT INTO app_logs (app_id, level, message, request_id, caller, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			w.appId, levelId, entry.Message, entry.RequestId, entry.Caller, time.Now().UTC(),
		)
	}
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
