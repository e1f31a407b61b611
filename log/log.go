/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log implements a moduled string logger for fmt-style log messages
// intended for developers and debugging. Key material must never be logged.
package log

import (
	"sync"

	"github.com/cryptoweave/cryptoweave/log/internal/metadata"
	"github.com/cryptoweave/cryptoweave/spi/log"
)

const (
	loggerNotInitializedMsg = "Default logger initialized (please call log.Initialize() if you wish to use a custom logger)"
	loggerModule            = "cryptoweave/common"
)

// Log is an implementation of the Logger interface.
// It encapsulates a default or custom logger to provide module and level
// based logging. The underlying logger instance is lazily initialized on
// first use.
type Log struct {
	instance log.Logger
	module   string
	once     sync.Once
}

// New creates and returns a Logger implementation for the given module name.
// To use a custom logger implementation, provide a logger provider via
// Initialize() before logging any line.
func New(module string) *Log {
	return &Log{module: module}
}

// Fatalf calls the Fatalf function of the underlying logger.
func (l *Log) Fatalf(msg string, args ...interface{}) {
	l.logger().Fatalf(msg, args...)
}

// Panicf calls the Panicf function of the underlying logger.
func (l *Log) Panicf(msg string, args ...interface{}) {
	l.logger().Panicf(msg, args...)
}

// Debugf calls the Debugf function of the underlying logger.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.logger().Debugf(msg, args...)
}

// Infof calls the Infof function of the underlying logger.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.logger().Infof(msg, args...)
}

// Warnf calls the Warnf function of the underlying logger.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.logger().Warnf(msg, args...)
}

// Errorf calls the Errorf function of the underlying logger.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.logger().Errorf(msg, args...)
}

func (l *Log) logger() log.Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})

	return l.instance
}

// SetLevel sets the log level for the given module. If not set, the default
// logging level is INFO.
func SetLevel(module string, level log.Level) {
	metadata.SetLevel(module, level)
}

// GetLevel returns the log level of the given module.
func GetLevel(module string) log.Level {
	return metadata.GetLevel(module)
}

// IsEnabledFor checks whether the given log level is enabled for the module.
func IsEnabledFor(module string, level log.Level) bool {
	return metadata.IsEnabledFor(module, level)
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (log.Level, error) {
	return metadata.ParseLevel(level)
}

// ShowCallerInfo shows caller info in log lines for the given module and level.
// Depending on the custom logger implementation, caller info may not be available.
func ShowCallerInfo(module string, level log.Level) {
	metadata.ShowCallerInfo(module, level)
}

// HideCallerInfo hides caller info in log lines for the given module and level.
func HideCallerInfo(module string, level log.Level) {
	metadata.HideCallerInfo(module, level)
}

// IsCallerInfoEnabled returns whether caller info is enabled for the given
// module and level.
func IsCallerInfoEnabled(module string, level log.Level) bool {
	return metadata.IsCallerInfoEnabled(module, level)
}
