package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerMu     sync.RWMutex
)

// InitLogger replaces the global logger. The previous one, if any, is closed.
func InitLogger(opts LoggerOptions) error {
	logger, err := NewLogger(opts)
	if err != nil {
		return err
	}

	loggerMu.Lock()
	prev := globalLogger
	globalLogger = logger
	loggerMu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}

// CloseLogger closes and detaches the global logger.
func CloseLogger() error {
	loggerMu.Lock()
	prev := globalLogger
	globalLogger = nil
	loggerMu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}

func current() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// LogInfo convenience functions for logging
func LogInfo(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Info(msg, fields...)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Debug(msg, fields...)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Warn(msg, fields...)
	}
}

func LogError(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Error(msg, fields...)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}
