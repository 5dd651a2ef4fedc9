package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOption 控制全局日志输出行为，由 config.LogConfig 转换而来。
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 为空则输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩旧日志
}

var (
	mu    sync.Mutex
	sugar = newDefault()
)

func newDefault() *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)
	return zap.New(core, zap.AddCallerSkip(1)).Sugar()
}

// Init 按配置重建全局 logger。未调用时使用 console/stdout/info 的默认配置。
func Init(opt LogOption) error {
	level := zapcore.InfoLevel
	if opt.Level != "" {
		if err := level.Set(opt.Level); err != nil {
			return err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if opt.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if opt.LogDir != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, "router.log"),
			MaxSize:    128, // MB
			MaxBackups: 16,
			Compress:   opt.Compress,
		})
	} else {
		sink = zapcore.Lock(os.Stdout)
	}

	mu.Lock()
	defer mu.Unlock()
	sugar = zap.New(zapcore.NewCore(enc, sink, level), zap.AddCallerSkip(1)).Sugar()
	return nil
}

func Debugf(format string, args ...interface{}) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}

// Sync 刷新缓冲日志，进程退出前调用。
func Sync() {
	_ = sugar.Sync()
}
