package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	loggerOnce sync.Once
	sugar      *zap.SugaredLogger
	atomLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// initLogger builds the global zap logger, writing console-encoded lines to
// stderr. Stdout stays free for report output.
func initLogger() {
	loggerOnce.Do(func() {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			atomLevel,
		)
		sugar = zap.New(core).Sugar()
	})
}

// SetLevel adjusts the minimum level of the global logger.
func SetLevel(l Level) {
	initLogger()
	switch l {
	case LevelDebug:
		atomLevel.SetLevel(zapcore.DebugLevel)
	case LevelInfo:
		atomLevel.SetLevel(zapcore.InfoLevel)
	case LevelWarn:
		atomLevel.SetLevel(zapcore.WarnLevel)
	case LevelError:
		atomLevel.SetLevel(zapcore.ErrorLevel)
	}
}

func Debug(msg string, kv ...any) {
	initLogger()
	sugar.Debugw(msg, kv...)
}

func Info(msg string, kv ...any) {
	initLogger()
	sugar.Infow(msg, kv...)
}

func Warn(msg string, kv ...any) {
	initLogger()
	sugar.Warnw(msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	initLogger()
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	sugar.Errorw(msg, extended...)
}

// Sync flushes buffered log entries. Flush errors on stderr are expected on
// some platforms and ignored.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
