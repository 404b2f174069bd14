// Package logging builds the file logger used by smartstatus programs.
//
// A Bubble Tea program owns the terminal, so diagnostics go to a rotating
// JSON log file instead of stderr. Rotation and retention are handled by
// Lumberjack; no external log-rotate job is required.
package logging

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.SugaredLogger writing JSON to <dir>/smartstatus.log and
// installs it as the process-wide default via zap.ReplaceGlobals.
func New(dir string, level zapcore.Level) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "smartstatus.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		CallerKey:   "caller",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(sink),
		level,
	)

	z := zap.New(core, zap.ErrorOutput(zapcore.AddSync(sink))).Sugar()
	zap.ReplaceGlobals(z.Desugar())
	return z, nil
}

// Nop returns a logger that discards everything. Library default and test
// helper.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
