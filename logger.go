package cronexpr

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger is used by a Schedule if none is specified. It discards
// everything.
var DefaultLogger = logr.Discard()

// NewZapLogger returns a logr.Logger backed by zap that writes console
// formatted records to w. Errors and routine messages are always written;
// verbose additionally enables V(1) debug messages such as search horizon
// exhaustion.
func NewZapLogger(w io.Writer, verbose bool) logr.Logger {
	level := zapcore.InfoLevel
	if verbose {
		// zapr maps V(1) to zap's debug level.
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zapr.NewLogger(zap.New(core)).WithName("cronexpr")
}
