package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

type Fields map[string]interface{}

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", 0)
	now    = func() time.Time { return time.Now().UTC() }
)

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func output(level, msg string, fields Fields) {
	line := make(Fields, len(fields)+3)
	for k, v := range fields {
		line[k] = v
	}
	line["level"] = level
	line["ts"] = now().Format(time.RFC3339)
	line["msg"] = msg
	b, err := json.Marshal(line)
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		// fallback to plain logging
		logger.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	logger.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	output("error", msg, withErr(fields, err))
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	output("fatal", msg, withErr(fields, err))
	os.Exit(1)
}

func withErr(fields Fields, err error) Fields {
	if err == nil {
		return fields
	}
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
