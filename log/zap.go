/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// DefaultLogger is a global logger configured to output messages at
	// InfoLevel and above to os.Stdout.
	DefaultLogger = New(InfoLevel, os.Stdout)

	// DebugLogger is a global logger configured to output messages at
	// DebugLevel and above to os.Stdout.
	DebugLogger = New(DebugLevel, os.Stdout)

	// DiscardLogger is a no-op logger that discards all log messages.
	DiscardLogger Logger = discardLogger{}
)

// Zap implements Logger with zap as the underlying logging library.
type Zap struct {
	level   Level
	outputs []io.Writer
	logger  *zap.Logger
	sugar   *zap.SugaredLogger
}

// enforce compilation error
var _ Logger = (*Zap)(nil)

// New creates a zap-backed logger writing entries at or above the given
// level to every writer.
func New(level Level, writers ...io.Writer) *Zap {
	if level == Disabled || len(writers) == 0 {
		nop := zap.NewNop()
		return &Zap{level: level, logger: nop, sugar: nop.Sugar()}
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.TimeKey = "timestamp"

	syncers := make([]zapcore.WriteSyncer, len(writers))
	for i, writer := range writers {
		syncers[i] = zapcore.AddSync(writer)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config),
		zapcore.NewMultiWriteSyncer(syncers...),
		toZapLevel(level),
	)

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.PanicLevel))

	return &Zap{
		level:   level,
		outputs: writers,
		logger:  logger,
		sugar:   logger.Sugar(),
	}
}

// Debug starts a new message with debug level.
func (x *Zap) Debug(v ...any) {
	x.sugar.Debug(v...)
}

// Debugf starts a new message with debug level.
func (x *Zap) Debugf(format string, v ...any) {
	x.sugar.Debugf(format, v...)
}

// Info starts a new message with info level.
func (x *Zap) Info(v ...any) {
	x.sugar.Info(v...)
}

// Infof starts a new message with info level.
func (x *Zap) Infof(format string, v ...any) {
	x.sugar.Infof(format, v...)
}

// Warn starts a new message with warn level.
func (x *Zap) Warn(v ...any) {
	x.sugar.Warn(v...)
}

// Warnf starts a new message with warn level.
func (x *Zap) Warnf(format string, v ...any) {
	x.sugar.Warnf(format, v...)
}

// Error starts a new message with error level.
func (x *Zap) Error(v ...any) {
	x.sugar.Error(v...)
}

// Errorf starts a new message with error level.
func (x *Zap) Errorf(format string, v ...any) {
	x.sugar.Errorf(format, v...)
}

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called which terminates the program immediately.
func (x *Zap) Fatal(v ...any) {
	x.sugar.Fatal(v...)
}

// Fatalf starts a new message with fatal level. The os.Exit(1) function
// is called which terminates the program immediately.
func (x *Zap) Fatalf(format string, v ...any) {
	x.sugar.Fatalf(format, v...)
}

// Panic starts a new message with panic level. The panic() function
// is called which stops the ordinary flow of a goroutine.
func (x *Zap) Panic(v ...any) {
	x.sugar.Panic(v...)
}

// Panicf starts a new message with panic level. The panic() function
// is called which stops the ordinary flow of a goroutine.
func (x *Zap) Panicf(format string, v ...any) {
	x.sugar.Panicf(format, v...)
}

// LogLevel returns the log level being used.
func (x *Zap) LogLevel() Level {
	return x.level
}

// LogOutput returns the log output that is set.
func (x *Zap) LogOutput() []io.Writer {
	return x.outputs
}

// toZapLevel maps a Level onto the zapcore equivalent.
func toZapLevel(level Level) zapcore.Level {
	switch level {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	case PanicLevel:
		return zapcore.PanicLevel
	case DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
