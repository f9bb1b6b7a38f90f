package logger

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger
var Log *zap.Logger = zap.NewNop()

// Logging response writer
type LoggingResponseWriter struct {
	http.ResponseWriter
	ResponseStatus int
	ResponseSize   int
}

// Write
func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.ResponseSize += size

	return size, err
}

// WriteHeader
func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.ResponseStatus = statusCode
}

// Options of the application logger
type Options struct {
	Level string
	// json or console
	Encoding    string
	OutputPaths []string
	Service     string
	Version     string
}

// Initialize Log from opts. Every entry carries service and version fields.
func Initialize(opts Options) error {
	lvl, err := zap.ParseAtomicLevel(opts.Level)
	if err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	if opts.Encoding != "" {
		config.Encoding = opts.Encoding
	}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]interface{}{
		"service": opts.Service,
		"version": opts.Version,
	}

	zLogger, err := config.Build()
	if err != nil {
		return err
	}

	Log = zLogger.Named(opts.Service)
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}
