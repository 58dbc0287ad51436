package storage

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// LogLevel orders log entries by severity.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

// Logger appends leveled entries to a single run log file and fans each
// entry out to subscribers. Safe for concurrent use.
type Logger struct {
	file        *os.File
	filename    string
	mu          sync.Mutex
	subscribers []chan string
}

// NewLogger opens (or creates) the run log file in append mode.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", filename, err)
	}

	return &Logger{
		file:     file,
		filename: filename,
	}, nil
}

// Close releases the log file and closes every subscriber channel so
// listeners ranging over them terminate. Further Log calls are dropped.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	for _, ch := range l.subscribers {
		close(ch)
	}
	l.subscribers = nil
	return err
}

// Log appends one entry formatted as "[timestamp] LEVEL: message" and
// notifies subscribers. Subscribers with full channels are skipped rather
// than blocking the pipeline.
func (l *Logger) Log(level LogLevel, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	entry := fmt.Sprintf("[%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		level.String(),
		message)

	if _, err := l.file.WriteString(entry); err != nil {
		fmt.Fprintf(os.Stderr, "log write failed: %v\n", err)
	}

	for _, ch := range l.subscribers {
		select {
		case ch <- entry:
		default:
		}
	}
}

// CheckRotate renames the live log to a timestamped sibling and reopens a
// fresh file once it has grown past maxBytes.
func (l *Logger) CheckRotate(maxBytes int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	info, err := l.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxBytes {
		return nil
	}
	return l.rotate()
}

// rotate assumes l.mu is held.
func (l *Logger) rotate() error {
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	rotated := fmt.Sprintf("%s.%s", l.filename, time.Now().Format("20060102150405"))
	if err := os.Rename(l.filename, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	file, err := os.OpenFile(l.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("reopen log file %s: %w", l.filename, err)
	}
	l.file = file
	return nil
}

// Subscribe returns a channel that receives every formatted entry written
// after the call.
func (l *Logger) Subscribe() <-chan string {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan string, 100)
	l.subscribers = append(l.subscribers, ch)
	return ch
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l *Logger) Debug(msg string)   { l.Log(DEBUG, msg) }
func (l *Logger) Info(msg string)    { l.Log(INFO, msg) }
func (l *Logger) Warning(msg string) { l.Log(WARNING, msg) }
func (l *Logger) Error(msg string)   { l.Log(ERROR, msg) }
func (l *Logger) Fatal(msg string)   { l.Log(FATAL, msg) }
