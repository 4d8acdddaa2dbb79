package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerMu     sync.RWMutex
)

// InitLogger initializes the global logger instance with debug mode support.
// Calling it again replaces the previous logger.
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	return InitLoggerWithFormat(logLevel, logFile, debugToConsole, FormatText)
}

// InitLoggerWithFormat is InitLogger with an explicit entry format.
func InitLoggerWithFormat(logLevel, logFile string, debugToConsole bool, format LogFormat) error {
	logger, err := NewLoggerWithFormat(logLevel, logFile, debugToConsole, format)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger swaps the global logger and closes the previous one. nil disables logging.
func SetLogger(logger LoggerInterface) {
	loggerMu.Lock()
	prev := globalLogger
	globalLogger = logger
	loggerMu.Unlock()

	if prev != nil && prev != logger {
		_ = prev.Close()
	}
}

func current() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// LogInfo convenience functions for logging
func LogInfo(msg string) {
	if l := current(); l != nil {
		l.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string) {
	if l := current(); l != nil {
		l.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string) {
	if l := current(); l != nil {
		l.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if l := current(); l != nil {
		l.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}
