// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package logger provides a leveled, optionally colorized logger that can be
// carried in a context.Context, so that libraries can log without threading
// an explicit logger through every call.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.chromium.org/ffmpeggen/lib/color"
)

type globalLoggerKeyType struct{}

// WithLogger returns a context derived from ctx that carries the given
// Logger.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, globalLoggerKeyType{}, logger)
}

// Logger represents a specific LogLevel with a specified color and prefix.
type Logger struct {
	LoggerLevel   LogLevel
	goLogger      *log.Logger
	goErrorLogger *log.Logger
	color         color.Color
	prefix        string
}

// LogLevel represents different levels for the Logger.
type LogLevel int

const (
	NoLogLevel LogLevel = iota
	FatalLevel
	ErrorLevel
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// Log flag constants, forwarded from the standard log package.
const (
	Ldate         = log.Ldate
	Ltime         = log.Ltime
	Lmicroseconds = log.Lmicroseconds
	Lshortfile    = log.Lshortfile
	LUTC          = log.LUTC
)

// String returns the string representation of the LogLevel.
func (l *LogLevel) String() string {
	switch *l {
	case NoLogLevel:
		return "no"
	case FatalLevel:
		return "fatal"
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}
	return ""
}

// Set sets the LogLevel based on its string value. It implements flag.Value.
func (l *LogLevel) Set(s string) error {
	switch strings.ToLower(s) {
	case "fatal":
		*l = FatalLevel
	case "error":
		*l = ErrorLevel
	case "warning":
		*l = WarningLevel
	case "info":
		*l = InfoLevel
	case "debug":
		*l = DebugLevel
	case "trace":
		*l = TraceLevel
	default:
		return fmt.Errorf("%s is not a valid level", s)
	}
	return nil
}

// NewLogger creates a new logger instance. The loggerLevel variable sets the
// log level for the logger. The color variable specifies the visual color of
// displayed log output. The outWriter and errWriter variables set the
// destination to which non-error and error data will be written. The prefix
// appears on the same line directly preceding any log data.
func NewLogger(loggerLevel LogLevel, color color.Color, outWriter, errWriter io.Writer, prefix string) *Logger {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	if errWriter == nil {
		errWriter = os.Stderr
	}
	l := &Logger{
		LoggerLevel:   loggerLevel,
		goLogger:      log.New(outWriter, "", 0),
		goErrorLogger: log.New(errWriter, "", 0),
		color:         color,
		prefix:        prefix,
	}
	return l
}

// SetFlags sets the output flags for the underlying go loggers.
func (l *Logger) SetFlags(flags int) {
	l.goLogger.SetFlags(flags)
	l.goErrorLogger.SetFlags(flags)
}

func (l *Logger) log(prefix, format string, a ...interface{}) {
	l.goLogger.Output(3, fmt.Sprintf("%s%s%s", l.prefix, prefix, fmt.Sprintf(format, a...)))
}

func (l *Logger) logToStderr(prefix, format string, a ...interface{}) {
	l.goErrorLogger.Output(3, fmt.Sprintf("%s%s%s", l.prefix, prefix, fmt.Sprintf(format, a...)))
}

// Logf logs the string based on the loglevel of the string and the LogLevel
// of the logger.
func (l *Logger) Logf(loglevel LogLevel, format string, a ...interface{}) {
	if loglevel > l.LoggerLevel {
		return
	}
	switch loglevel {
	case InfoLevel, DebugLevel, TraceLevel:
		l.log("", format, a...)
	case WarningLevel:
		l.logToStderr(l.color.Yellow("WARN: "), format, a...)
	case ErrorLevel:
		l.logToStderr(l.color.Red("ERROR: "), format, a...)
	case FatalLevel:
		l.logToStderr(l.color.Red("FATAL: "), format, a...)
		os.Exit(1)
	default:
		panic(fmt.Sprintf("Undefined loglevel: %v, log message: %s", loglevel, fmt.Sprintf(format, a...)))
	}
}

func (l *Logger) Tracef(format string, a ...interface{})   { l.Logf(TraceLevel, format, a...) }
func (l *Logger) Debugf(format string, a ...interface{})   { l.Logf(DebugLevel, format, a...) }
func (l *Logger) Infof(format string, a ...interface{})    { l.Logf(InfoLevel, format, a...) }
func (l *Logger) Warningf(format string, a ...interface{}) { l.Logf(WarningLevel, format, a...) }
func (l *Logger) Errorf(format string, a ...interface{})   { l.Logf(ErrorLevel, format, a...) }
func (l *Logger) Fatalf(format string, a ...interface{})   { l.Logf(FatalLevel, format, a...) }

// LoggerFromContext returns the Logger carried by ctx, or nil.
func LoggerFromContext(ctx context.Context) *Logger {
	if v, ok := ctx.Value(globalLoggerKeyType{}).(*Logger); ok && v != nil {
		return v
	}
	return nil
}

func logf(ctx context.Context, loglevel LogLevel, format string, a ...interface{}) {
	if l := LoggerFromContext(ctx); l != nil {
		l.Logf(loglevel, format, a...)
		return
	}
	// Fall back on the default go logger.
	if loglevel == FatalLevel {
		log.Fatalf(format, a...)
	}
	log.Printf(format, a...)
}

func Tracef(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, TraceLevel, format, a...)
}

func Debugf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, DebugLevel, format, a...)
}

func Infof(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, InfoLevel, format, a...)
}

func Warningf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, WarningLevel, format, a...)
}

func Errorf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, ErrorLevel, format, a...)
}

func Fatalf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, FatalLevel, format, a...)
}
