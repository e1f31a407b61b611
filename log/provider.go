/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"

	"github.com/cryptoweave/cryptoweave/log/internal/modlog"
	"github.com/cryptoweave/cryptoweave/spi/log"
)

// loggerProviderInstance is the logger factory singleton - access only via
// loggerProvider().
//
//nolint:gochecknoglobals
var (
	loggerProviderInstance log.LoggerProvider
	loggerProviderOnce     sync.Once
)

// Initialize sets a new custom logging provider which takes over logging
// operations. It must be called before any logging for the custom provider
// to take effect.
func Initialize(l log.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{l}
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debugf("Logger provider initialized")
	})
}

func loggerProvider() log.LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom logger must be initialized prior to the first log output,
		// otherwise the built-in logger is used.
		loggerProviderInstance = &modlogProvider{}
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debugf(loggerNotInitializedMsg)
	})

	return loggerProviderInstance
}

// modlogProvider is a module-based logger provider wrapped around an optional
// custom logging provider. When no custom provider is given, the built-in
// logger is used.
type modlogProvider struct {
	custom log.LoggerProvider
}

// GetLogger returns a moduled logger implementation.
func (p *modlogProvider) GetLogger(module string) log.Logger {
	var logger log.Logger
	if p.custom != nil {
		logger = p.custom.GetLogger(module)
	} else {
		logger = modlog.NewDefLog(module)
	}

	return modlog.NewModLog(logger, module)
}
