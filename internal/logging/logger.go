package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
	root   *zap.SugaredLogger
	atom   = zap.NewAtomicLevel()
)

func initLogger() {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	logger = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		atom,
	))
	root = logger.Sugar()
}

// Init builds the root logger.  Calling it more than once is harmless.
func Init() {
	once.Do(initLogger)
}

// Sync flushes buffered entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// New returns a logger named after the calling component.
func New(name string) *zap.SugaredLogger {
	Init()
	return root.Named(name)
}

// SetDebug switches the root level between debug and info.
func SetDebug(enable bool) {
	if enable {
		atom.SetLevel(zap.DebugLevel)
		return
	}
	atom.SetLevel(zap.InfoLevel)
}

// SetLevel parses a textual level such as "warn"; unknown values leave the
// level unchanged and return the parse error.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	atom.SetLevel(lvl)
	return nil
}

// Level reports the current root level.
func Level() zapcore.Level {
	return atom.Level()
}
