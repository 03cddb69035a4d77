package utils

import "log"

var (
	printLoggerInstance ILogger = defaultLogger()
)

type ILogger interface {
	// Printf formats according to a format specifier and writes to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(string, ...any)
}

// LoggerFunc adapts an ordinary printf-style function to ILogger.
type LoggerFunc func(string, ...any)

func (f LoggerFunc) Printf(format string, args ...any) {
	f(format, args...)
}

type defaultPrintLogger struct {
	l *log.Logger
}

func (dpl *defaultPrintLogger) Printf(fmt string, args ...any) {
	dpl.l.Printf(fmt, args...)
}

func defaultLogger() ILogger {
	return &defaultPrintLogger{
		l: log.New(log.Writer(), "nutshash: ", log.LstdFlags),
	}
}

// SetLogger replaces the process logger. A nil logger discards output.
func SetLogger(logger ILogger) {
	if logger == nil {
		logger = LoggerFunc(func(string, ...any) {})
	}
	printLoggerInstance = logger
}

func GetLogger() ILogger {
	return printLoggerInstance
}
