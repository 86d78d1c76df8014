// Package logging builds the zap logger of every binary. Entries at
// SentryLevel and above are also captured by Sentry.
package logging

import (
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/volumevault/vault-estimator/cfg"
)

const SentryLevel = zapcore.WarnLevel

type Options struct {
	// OutputPaths replaces zap's default sinks, e.g. a file for the terminal UI.
	OutputPaths []string
	// Hub receives Sentry events; sentry.CurrentHub() when nil.
	Hub *sentry.Hub
}

func New(sCfg cfg.ServiceConfig, opts Options) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	switch sCfg.ServerMode {
	case cfg.ModeDev:
		logCfg = zap.NewDevelopmentConfig()
		if len(opts.OutputPaths) == 0 {
			logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	case cfg.ModeProduction:
		logCfg = zap.NewProductionConfig()
	}
	if len(opts.OutputPaths) > 0 {
		logCfg.OutputPaths = opts.OutputPaths
		logCfg.ErrorOutputPaths = opts.OutputPaths
	}

	switch sCfg.LogLevel {
	case "info":
		logCfg.Level.SetLevel(zapcore.InfoLevel)
	case "debug":
		logCfg.Level.SetLevel(zapcore.DebugLevel)
	case "warn":
		logCfg.Level.SetLevel(zapcore.WarnLevel)
	default:
		logCfg.Level.SetLevel(zapcore.InfoLevel)
	}

	hub := opts.Hub
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	sentryOpts := zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.RegisterHooks(core, SentryHook(hub))
	})
	return logCfg.Build(sentryOpts)
}

// SentryHook turns entries at SentryLevel and above into Sentry events.
func SentryHook(hub *sentry.Hub) func(zapcore.Entry) error {
	return func(entry zapcore.Entry) error {
		if entry.Level < SentryLevel {
			return nil
		}
		e := sentry.NewEvent()
		e.Message = entry.Message
		e.Logger = entry.LoggerName
		switch entry.Level {
		case zapcore.WarnLevel:
			e.Level = sentry.LevelWarning
		case zapcore.ErrorLevel:
			e.Level = sentry.LevelError
		default:
			e.Level = sentry.LevelFatal
		}
		if entry.Caller.Defined {
			e.Extra = map[string]interface{}{"caller": entry.Caller.TrimmedPath()}
		}
		hub.CaptureEvent(e)
		return nil
	}
}
