package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/utilcode/internal/common"
	"github.com/aleister1102/utilcode/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config LoggerConfig
	err    error
}

func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{config: DefaultLoggerConfig()}
}

// WithConfig applies a log_config section. Zero sizes keep the defaults.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		lb.err = err
	}
	lb.config.Level = level
	lb.config.Format = ParseFormat(cfg.LogFormat)
	lb.config.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		lb.config.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		lb.config.MaxBackups = cfg.MaxLogBackups
	}
	return lb
}

func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

func (lb *LoggerBuilder) WithFormat(format LogFormat) *LoggerBuilder {
	lb.config.Format = format
	return lb
}

// WithConsole redirects console output. A nil writer disables it.
func (lb *LoggerBuilder) WithConsole(w io.Writer) *LoggerBuilder {
	lb.config.Console = w
	return lb
}

func (lb *LoggerBuilder) WithFile(path string, maxSizeMB, maxBackups int) *LoggerBuilder {
	lb.config.FilePath = path
	lb.config.MaxSizeMB = maxSizeMB
	lb.config.MaxBackups = maxBackups
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.err != nil {
		return nil, lb.err
	}
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	var writers []io.Writer
	var closer io.Closer

	if lb.config.Console != nil {
		writers = append(writers, strategyFor(lb.config.Format, false).CreateWriter(lb.config.Console))
	}
	if lb.config.FilePath != "" {
		fw, err := newFileWriter(lb.config)
		if err != nil {
			return nil, common.WrapError(err, "failed to create log directory")
		}
		closer = fw
		writers = append(writers, strategyFor(lb.config.Format, true).CreateWriter(fw))
	}
	if len(writers) == 0 {
		return nil, common.NewError("no output writers configured")
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(zl)
	stdlog.SetFlags(0)

	return &Logger{zerolog: zl, config: lb.config, closer: closer}, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.FilePath != "" && lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}
	if lb.config.MaxBackups < 0 {
		return common.NewValidationError("max_backups", lb.config.MaxBackups, "max backups cannot be negative")
	}
	return nil
}
