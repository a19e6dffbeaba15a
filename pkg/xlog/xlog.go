// Package xlog holds the process-wide structured logger.
package xlog

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	timeKey         = "time"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	ModeStderr = "stderr"
	ModeFile   = "file"
	ModeOff    = "off"
)

var levels = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

// Conf configures the logger. Zero fields take defaults.
type Conf struct {
	Mode       string // stderr, file or off
	Path       string // directory of the log file
	Filename   string
	Encoding   string // json or console
	TimeFormat string
	Level      string // debug, info, warn, error
	MaxSizeMB  int
	KeepDays   int
}

var (
	mu      sync.RWMutex
	current = zap.NewNop()
)

func init() {
	current = build(Conf{})
}

// Load replaces the process logger.
func Load(conf Conf) {
	l := build(conf)

	mu.Lock()
	old := current
	current = l
	mu.Unlock()

	_ = old.Sync()
}

// Write returns the process logger.
func Write() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Sync flushes buffered entries.
func Sync() error {
	return Write().Sync()
}

func build(conf Conf) *zap.Logger {
	defaultConf(&conf)
	if conf.Mode == ModeOff {
		return zap.NewNop()
	}

	var ws zapcore.WriteSyncer
	switch conf.Mode {
	case ModeFile:
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename: filepath.Join(conf.Path, conf.Filename),
			MaxSize:  conf.MaxSizeMB,
			MaxAge:   conf.KeepDays,
		})
	default:
		ws = zapcore.Lock(os.Stderr)
	}

	level, ok := levels[conf.Level]
	if !ok {
		level = zap.InfoLevel
	}
	core := zapcore.NewCore(encoder(conf), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func encoder(conf Conf) zapcore.Encoder {
	econf := zap.NewProductionEncoderConfig()
	econf.TimeKey = timeKey
	econf.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(conf.TimeFormat))
	}
	econf.EncodeLevel = zapcore.LowercaseLevelEncoder
	if conf.Encoding == EncodingJSON {
		return zapcore.NewJSONEncoder(econf)
	}
	return zapcore.NewConsoleEncoder(econf)
}

func defaultConf(conf *Conf) {
	if conf.Mode == "" {
		conf.Mode = ModeStderr
	}
	if conf.Path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		conf.Path = filepath.Join(dir, "sketchpad")
	}
	if conf.Filename == "" {
		conf.Filename = "sketchpad.log"
	}
	if conf.Encoding == "" {
		conf.Encoding = EncodingConsole
	}
	if conf.TimeFormat == "" {
		conf.TimeFormat = "2006-01-02 15:04:05"
	}
	if conf.Level == "" {
		conf.Level = "info"
	}
	if conf.MaxSizeMB == 0 {
		conf.MaxSizeMB = 10
	}
	if conf.KeepDays == 0 {
		conf.KeepDays = 7
	}
}
