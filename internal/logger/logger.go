package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"

	"utms/internal/config"
)

// New builds a Logrus logger writing to a rotating file. With debug set it
// also echoes to stderr and logs at debug level. The returned func closes
// the rotator.
func New(cfg config.LogConfig, debug bool) (*logrus.Logger, func() error) {
	// 1) Lumberjack for file rotation
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}

	// 2) Configure Logrus to write to that file
	log := logrus.New()
	var out io.Writer = rotator
	if debug {
		out = io.MultiWriter(rotator, os.Stderr)
	}
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	if err != nil {
		log.WithField("level", cfg.Level).Warn("Unknown log level, using info")
	}

	return log, rotator.Close
}

// Setup is New plus pointing the standard Logrus logger at the same
// rotator, for packages that log through the package-level functions.
func Setup(cfg config.LogConfig, debug bool) (*logrus.Logger, func() error) {
	log, closeFn := New(cfg, debug)
	logrus.SetOutput(log.Out)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.GetLevel())
	return log, func() error {
		logrus.SetOutput(os.Stderr)
		return closeFn()
	}
}
