package util

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger on stderr. Unknown levels fall back to
// warn so the resolver's construction warnings stay visible.
func NewLogger(level string) *zap.Logger {
	return newLogger(level, os.Stderr)
}

func newLogger(level string, out io.Writer) *zap.Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if f, ok := out.(*os.File); !ok || f != os.Stderr {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core)
}
