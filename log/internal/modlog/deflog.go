/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"fmt"
	"io"
	builtinlog "log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cryptoweave/cryptoweave/log/internal/metadata"
	"github.com/cryptoweave/cryptoweave/spi/log"
)

const (
	logLevelFormatter   = "UTC %s-> %s "
	logPrefixFormatter  = " [%s] "
	callerInfoFormatter = "- %s "
)

// NewDefLog returns a new DefLog instance for the given module.
func NewDefLog(module string) *DefLog {
	logger := builtinlog.New(os.Stdout, fmt.Sprintf(logPrefixFormatter, module),
		builtinlog.Ldate|builtinlog.Ltime|builtinlog.LUTC)

	return &DefLog{logger: logger, module: module}
}

// DefLog is a logger implementation built on the standard go log package.
// Caller info display is configurable per module and level through metadata;
// it is enabled by default.
// Log format: [<MODULE>] <TIME UTC> - <CALLER INFO> -> <LEVEL> <TEXT>.
type DefLog struct {
	logger *builtinlog.Logger
	module string
}

// Fatalf is a CRITICAL log followed by a call to os.Exit(1).
func (l *DefLog) Fatalf(format string, args ...interface{}) {
	l.logf(log.CRITICAL, format, args...)
	os.Exit(1)
}

// Panicf is a CRITICAL log followed by a call to panic().
func (l *DefLog) Panicf(format string, args ...interface{}) {
	l.logf(log.CRITICAL, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Debugf logs a verbose message. Arguments are handled in the manner of fmt.Printf.
func (l *DefLog) Debugf(format string, args ...interface{}) {
	l.logf(log.DEBUG, format, args...)
}

// Infof logs a general information message.
func (l *DefLog) Infof(format string, args ...interface{}) {
	l.logf(log.INFO, format, args...)
}

// Warnf logs a possible error condition.
func (l *DefLog) Warnf(format string, args ...interface{}) {
	l.logf(log.WARNING, format, args...)
}

// Errorf logs an error.
func (l *DefLog) Errorf(format string, args ...interface{}) {
	l.logf(log.ERROR, format, args...)
}

// SetOutput sets the output destination for the logger.
func (l *DefLog) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *DefLog) logf(level log.Level, format string, args ...interface{}) {
	const callDepth = 2

	customPrefix := fmt.Sprintf(logLevelFormatter, l.getCallerInfo(level), metadata.ParseString(level))

	err := l.logger.Output(callDepth, customPrefix+fmt.Sprintf(format, args...))
	if err != nil {
		fmt.Printf("error from logger.Output %v\n", err) //nolint:forbidigo
	}
}

// getCallerInfo walks runtime caller frames to find the caller of the logger
// function, filtering the logging library's own frames.
func (l *DefLog) getCallerInfo(level log.Level) string {
	if !metadata.IsCallerInfoEnabled(l.module, level) {
		return ""
	}

	const (
		maxCallers  = 6
		skipCallers = 5
		notFound    = "n/a"
		logPrefix   = "log.(*Log)"
	)

	fpcs := make([]uintptr, maxCallers)

	n := runtime.Callers(skipCallers, fpcs)
	if n == 0 {
		return fmt.Sprintf(callerInfoFormatter, notFound)
	}

	frames := runtime.CallersFrames(fpcs[:n])
	loggerFrameFound := false

	for f, more := frames.Next(); more; f, more = frames.Next() {
		_, fnName := filepath.Split(f.Function)

		if f.Func == nil || f.Function == "" {
			fnName = notFound
		}

		if loggerFrameFound {
			return fmt.Sprintf(callerInfoFormatter, fnName)
		}

		if strings.HasPrefix(fnName, logPrefix) {
			loggerFrameFound = true

			continue
		}

		return fmt.Sprintf(callerInfoFormatter, fnName)
	}

	return fmt.Sprintf(callerInfoFormatter, notFound)
}
