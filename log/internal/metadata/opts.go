/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata holds per-module logging options: levels and caller-info
// visibility. Access is safe for concurrent use.
package metadata

import (
	"errors"
	"strings"
	"sync"

	"github.com/cryptoweave/cryptoweave/spi/log"
)

// defLevel is the logging level applied to modules with no explicit level.
const defLevel = log.INFO

//nolint:gochecknoglobals
var (
	rwmutex     = &sync.RWMutex{}
	levels      = make(map[string]log.Level)
	callerInfos = make(map[string]bool)
)

// SetLevel sets the log level for given module.
func SetLevel(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	levels[module] = level
}

// GetLevel returns the log level for given module, INFO when unset.
func GetLevel(module string) log.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()

	level, ok := levels[module]
	if !ok {
		return defLevel
	}

	return level
}

// IsEnabledFor returns true if given log level is enabled for given module.
func IsEnabledFor(module string, level log.Level) bool {
	return level <= GetLevel(module)
}

// ShowCallerInfo enables caller info in log lines of given module and level.
func ShowCallerInfo(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	callerInfos[callerInfoKey(module, level)] = true
}

// HideCallerInfo disables caller info in log lines of given module and level.
func HideCallerInfo(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	callerInfos[callerInfoKey(module, level)] = false
}

// IsCallerInfoEnabled returns true if caller info is enabled for given module
// and level. Caller info is enabled by default.
func IsCallerInfoEnabled(module string, level log.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()

	enabled, ok := callerInfos[callerInfoKey(module, level)]
	if !ok {
		return true
	}

	return enabled
}

//nolint:gochecknoglobals
var levelNames = []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}

// ParseString returns the string representation of given log level.
func ParseString(level log.Level) string {
	return levelNames[level]
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (log.Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return log.Level(i), nil
		}
	}

	return log.ERROR, errors.New("invalid log level")
}

func callerInfoKey(module string, level log.Level) string {
	return module + ":" + ParseString(level)
}
