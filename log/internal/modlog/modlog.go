/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog provides a moduled wrapper for any underlying log.Logger
// implementation, filtering by the per-module levels kept in metadata.
package modlog

import (
	"github.com/cryptoweave/cryptoweave/log/internal/metadata"
	"github.com/cryptoweave/cryptoweave/spi/log"
)

// NewModLog returns a new moduled logger wrapping the given implementation.
func NewModLog(logger log.Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// ModLog is a moduled wrapper for an underlying log.Logger implementation.
// Each module can have a different logging level (default is INFO).
type ModLog struct {
	logger log.Logger
	module string
}

// Fatalf calls the underlying logger.Fatalf.
func (m *ModLog) Fatalf(format string, args ...interface{}) {
	m.logger.Fatalf(format, args...)
}

// Panicf calls the underlying logger.Panicf.
func (m *ModLog) Panicf(format string, args ...interface{}) {
	m.logger.Panicf(format, args...)
}

// Debugf logs if DEBUG level is enabled for the module.
func (m *ModLog) Debugf(format string, args ...interface{}) {
	if !metadata.IsEnabledFor(m.module, log.DEBUG) {
		return
	}

	m.logger.Debugf(format, args...)
}

// Infof logs if INFO level is enabled for the module.
func (m *ModLog) Infof(format string, args ...interface{}) {
	if !metadata.IsEnabledFor(m.module, log.INFO) {
		return
	}

	m.logger.Infof(format, args...)
}

// Warnf logs if WARNING level is enabled for the module.
func (m *ModLog) Warnf(format string, args ...interface{}) {
	if !metadata.IsEnabledFor(m.module, log.WARNING) {
		return
	}

	m.logger.Warnf(format, args...)
}

// Errorf logs if ERROR level is enabled for the module.
func (m *ModLog) Errorf(format string, args ...interface{}) {
	if !metadata.IsEnabledFor(m.module, log.ERROR) {
		return
	}

	m.logger.Errorf(format, args...)
}
