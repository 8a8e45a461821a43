package a11ykit

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel orders engine log output.
type LogLevel int8

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

var logLevelNames = [...]string{
	LogLevelDebug:   "debug",
	LogLevelInfo:    "info",
	LogLevelWarning: "warning",
	LogLevelError:   "error",
}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(logLevelNames) {
		return logLevelNames[l]
	}
	return fmt.Sprintf("LogLevel(%d)", l)
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "warn" is accepted as
// an alias for "warning".
func (l *LogLevel) UnmarshalText(b []byte) error {
	s := string(b)
	if s == "warn" {
		s = "warning"
	}
	for i, name := range logLevelNames {
		if name == s {
			*l = LogLevel(i)
			return nil
		}
	}
	return fmt.Errorf("a11ykit: unknown log level %q", b)
}

// ZapLevel returns the zap level corresponding to l.
func (l LogLevel) ZapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarning:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// engineLog filters log lines by the configured level and the enable switch
// before handing them to zap. The engine behaves identically with logging
// disabled.
type engineLog struct {
	zl      *zap.Logger
	enabled bool
}

func newEngineLog() engineLog {
	return engineLog{zl: zap.NewNop(), enabled: true}
}

func (l *engineLog) log(threshold, level LogLevel, msg string, fields ...zap.Field) {
	if !l.enabled || level < threshold {
		return
	}
	if ce := l.zl.Check(level.ZapLevel(), msg); ce != nil {
		ce.Write(fields...)
	}
}
