package logs

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	// Logger is the debug logger. It discards output until Initialize is
	// called with a path.
	Logger  = log.New(io.Discard, "[journal] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at the file at path. An empty path keeps
// logging disabled. The terminal belongs to the picker and the editor, so
// debug output never goes to stdout or stderr.
func Initialize(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger.SetOutput(f)
	Logger.Printf("logging to %s", path)

	return nil
}

// Close closes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger.SetOutput(io.Discard)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
