package log

import (
	"os"
	"strings"

	"socialelections/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel 不認得的值一律退回 info
func ParseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevelAt(ParseLevel(conf.Log.Level))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	// 本機開發用 console 比較好讀
	var encoder zapcore.Encoder
	if conf.App.Env == "local" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	// warn 以上寫 stderr，其餘 stdout
	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l >= zapcore.WarnLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), stderrLevel),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	if conf.App.Name != "" {
		logger = logger.With(zap.String("service", conf.App.Name), zap.String("version", conf.App.Version))
	}
	logger.Debug("zap logger ready", zap.String("level", atomic.Level().String()))

	return logger, nil
}
