// Package logger provides the leveled logging used across the compiler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	defaultLogger *slog.Logger
	logFile       *os.File
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel accepts the level names used in the config file.
func ParseLevel(name string) (LogLevel, error) {
	switch name {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("invalid log level %q, expected debug, info, warn or error", name)
}

type Config struct {
	Level   LogLevel
	Format  string // "text" or "json"
	Output  io.Writer
	LogFile string
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// Init replaces the package logger. Text output to a terminal is colored.
// A log file opened here stays open until Close.
func Init(cfg Config) error {
	if cfg.Format != "" && cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("invalid log format %q, expected text or json", cfg.Format)
	}
	if err := Close(); err != nil {
		return err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logFile = file
		output = file
	}

	level := toSlogLevel(cfg.Level)

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	} else {
		useColor := false
		if f, ok := output.(*os.File); ok && isTerminal(f) {
			output = colorable.NewColorable(f)
			useColor = true
		}
		handler = newTerminalHandler(output, level, useColor)
	}

	defaultLogger = slog.New(handler)
	return nil
}

// Close releases the log file, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Discard silences the package logger.
func Discard() {
	defaultLogger = slog.New(newTerminalHandler(io.Discard, slog.LevelError+1, false))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

// LogPhase logs the completion of a compilation phase
func LogPhase(phase string, args ...any) {
	Debug("Completed compilation phase", append([]any{"phase", phase}, args...)...)
}
