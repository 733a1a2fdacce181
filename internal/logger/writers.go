package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aleister1102/utilcode/internal/timeutil"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultConsole io.Writer = os.Stderr

// WriterStrategy wraps a raw output with a log encoding.
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

type JSONWriterStrategy struct{}

func (JSONWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

type ConsoleWriterStrategy struct {
	NoColor bool
}

func (cws ConsoleWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: timeutil.LayoutDateTime,
		NoColor:    cws.NoColor,
	}
}

// strategyFor picks the encoding for format. Files never get color codes.
func strategyFor(format LogFormat, toFile bool) WriterStrategy {
	switch format {
	case FormatJSON:
		return JSONWriterStrategy{}
	case FormatText:
		return ConsoleWriterStrategy{NoColor: true}
	default:
		return ConsoleWriterStrategy{NoColor: toFile}
	}
}

// newFileWriter opens a rotating log file at cfg.FilePath.
func newFileWriter(cfg LoggerConfig) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}, nil
}
