// Package logz builds the process-wide structured logger from the
// configured sinks (console/file, each with its own level), and names
// per-connection child loggers after the worker's remote address.
package logz

import (
	"os"

	"github.com/go-mclib/mcserver/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger tee-ing every configured sink together, each at
// its own level filter. An empty sink list falls back to a single stderr
// sink at info level.
func New(sinks []config.LoggingConfig) (*zap.Logger, error) {
	if len(sinks) == 0 {
		sinks = []config.LoggingConfig{{Level: "info", Console: "stderr"}}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	var cores []zapcore.Core
	for _, sink := range sinks {
		level, err := zapcore.ParseLevel(sink.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}

		var ws zapcore.WriteSyncer
		if sink.IsFileSink() {
			f, err := os.OpenFile(sink.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, err
			}
			ws = zapcore.AddSync(f)
		} else if sink.Console == "stdout" {
			ws = zapcore.AddSync(os.Stdout)
		} else {
			ws = zapcore.AddSync(os.Stderr)
		}

		cores = append(cores, zapcore.NewCore(encoder, ws, level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// ForConnection returns a child logger tagged with the connection's remote
// address, per §4.6's "naming itself after the remote socket address".
func ForConnection(base *zap.Logger, remoteAddr string) *zap.Logger {
	return base.With(zap.String("conn", remoteAddr))
}
