// Package logging provides the process-wide diagnostic logger.
//
// Outcome lines meant for the user are printed by the ui package; this
// logger only carries debug and warning traces and writes to stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	base        *zap.Logger
	sugar       *zap.SugaredLogger
)

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomicLevel
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	base = logger
	sugar = base.Sugar()
}

// SetVerbose switches between debug and warn level.
func SetVerbose(verbose bool) {
	if verbose {
		atomicLevel.SetLevel(zapcore.DebugLevel)
		return
	}
	atomicLevel.SetLevel(zapcore.WarnLevel)
}

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return atomicLevel.Enabled(zapcore.DebugLevel)
}

func Sync() {
	_ = base.Sync()
}

func Debug(format string, args ...any) {
	sugar.Debugf(format, args...)
}

func Info(format string, args ...any) {
	sugar.Infof(format, args...)
}

func Warn(format string, args ...any) {
	sugar.Warnf(format, args...)
}

func Error(format string, args ...any) {
	sugar.Errorf(format, args...)
}
