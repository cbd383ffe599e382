package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
)

type LogLevel int

const (
	Verbose3 LogLevel = iota
	Verbose2
	Verbose1
	Info
	Warning
	Error
)

var levelNames = map[string]LogLevel{
	"verbose3": Verbose3,
	"verbose2": Verbose2,
	"verbose1": Verbose1,
	"info":     Info,
	"warning":  Warning,
	"error":    Error,
}

// ParseLevel returns the level with the given name, as used by the
// --loglevel flag: one of error, warning, info, verbose1, verbose2, verbose3.
func ParseLevel(name string) (LogLevel, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.NotValidf("log level %q", name)
	}

	return level, nil
}

var output io.Writer = os.Stderr
var outputMtx sync.Mutex

// SetOutput sets the writer all loggers print to; nil means stderr, which
// is the default.
func SetOutput(w io.Writer) {
	outputMtx.Lock()
	defer outputMtx.Unlock()

	if w == nil {
		w = os.Stderr
	}

	output = w
}

// printf prints a formatted, timestamped line to the current output.
func printf(format string, a ...interface{}) {
	var sb strings.Builder

	sb.WriteString(time.Now().Format("2006-01-02T15:04:05.999"))
	sb.WriteString(": ")
	fmt.Fprintf(&sb, format, a...)

	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}

	// Each line is a single write.
	outputMtx.Lock()
	defer outputMtx.Unlock()

	io.WriteString(output, sb.String())
}

type Logger struct {
	minLevel LogLevel

	namespace string
}

func NewLogger(minLevel LogLevel) *Logger {
	return &Logger{
		minLevel: minLevel,
	}
}

func (l *Logger) thisOrDefault() *Logger {
	if l != nil {
		return l
	}

	return &Logger{
		minLevel: Info,
	}
}

func (l *Logger) WithNamespaceAppended(n string) *Logger {
	l = l.thisOrDefault()

	ns := l.namespace
	if ns != "" {
		ns += "/"
	}
	ns += n

	newLogger := *l
	newLogger.namespace = ns
	return &newLogger
}

func (l *Logger) Verbose3f(format string, a ...interface{}) {
	l.Printf(Verbose3, format, a...)
}

func (l *Logger) Verbose2f(format string, a ...interface{}) {
	l.Printf(Verbose2, format, a...)
}

func (l *Logger) Verbose1f(format string, a ...interface{}) {
	l.Printf(Verbose1, format, a...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.Printf(Info, format, a...)
}

func (l *Logger) Warnf(format string, a ...interface{}) {
	l.Printf(Warning, format, a...)
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	l.Printf(Error, format, a...)
}

func (l *Logger) Printf(level LogLevel, format string, a ...interface{}) {
	l = l.thisOrDefault()

	if level < l.minLevel {
		return
	}

	if l.namespace != "" {
		printf("[%s] %s", l.namespace, fmt.Sprintf(format, a...))
	} else {
		printf("%s", fmt.Sprintf(format, a...))
	}
}
