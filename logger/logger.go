package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogLevel            hclog.Level
	JSONLogFormat       bool
	AppendFile          bool
	RotatingLogsEnabled bool
	RotateMaxSizeMB     int
	RotateMaxBackups    int
	LogFilePath         string
	Name                string
}

func NewLogger(config LoggerConfig) (hclog.Logger, error) {
	var output io.Writer

	if config.RotatingLogsEnabled {
		if strings.TrimSpace(config.LogFilePath) == "" {
			return nil, errors.New("log file path is mandatory for rotating logs")
		}

		if err := createLogDir(config.LogFilePath); err != nil {
			return nil, err
		}

		maxSize := config.RotateMaxSizeMB
		if maxSize == 0 {
			maxSize = 50
		}

		output = &lumberjack.Logger{
			Filename:   config.LogFilePath,
			MaxSize:    maxSize,
			MaxBackups: config.RotateMaxBackups,
		}
	} else if strings.TrimSpace(config.LogFilePath) != "" {
		logFileWriter, err := getLogFileWriter(config)
		if err != nil {
			return nil, err
		}

		output = logFileWriter
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       config.Name,
		Level:      config.LogLevel,
		Output:     output,
		JSONFormat: config.JSONLogFormat,
	}), nil
}

func getLogFileWriter(config LoggerConfig) (*os.File, error) {
	fullFilePath := strings.TrimSpace(config.LogFilePath)
	if fullFilePath == "" {
		return nil, nil
	}

	if err := createLogDir(fullFilePath); err != nil {
		return nil, err
	}

	if !config.AppendFile {
		fullFilePath = timestampedPath(fullFilePath)
	}

	logFileWriter, err := os.OpenFile(fullFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("could not create or open log file, %w", err)
	}

	return logFileWriter, nil
}

func createLogDir(logFilePath string) error {
	dir := filepath.Dir(logFilePath)
	if dir == "/" || strings.TrimLeft(dir, ".") == "" {
		return nil
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not create log directory, %w", err)
	}

	return nil
}

// timestampedPath inserts a filesystem-safe UTC timestamp before the file
// extension, so non-append runs do not clobber earlier logs.
func timestampedPath(path string) string {
	timestamp := strings.NewReplacer(":", "_", "-", "_").Replace(time.Now().UTC().Format(time.RFC3339))
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "_" + timestamp + ext
}
