package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger to write to a rotating log
// file. The terminal belongs to the UI, so nothing is written to stdout.
func Setup(logFileName, level string) {
	logrus.SetLevel(GetLevel(level))

	if logFileName == "" {
		logrus.SetOutput(io.Discard)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   10, // megabytes
		LocalTime: false,
		Compress:  true,
	})
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
