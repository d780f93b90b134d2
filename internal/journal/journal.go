// Package journal maps calendar dates to date-titled Markdown files in an
// output directory. A journal file starts with a fixed three-line header:
// the title, an underline rule of '=' characters and a blank line.
package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/journal/internal/logs"
)

// Sentinel errors for journal operations.
var (
	ErrInvalidDirectory = errors.New("invalid output directory")
	ErrStorage          = errors.New("storage error")
)

const (
	// HeaderLines is the number of lines written at creation.
	HeaderLines = 3

	titleLayout = "2006-01-02-Mon"
	ext         = ".md"
)

// Day returns the local midnight of t's calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Title returns the canonical uppercase title for a date, e.g. "2024-03-15-FRI".
func Title(date time.Time) string {
	return strings.ToUpper(date.Format(titleLayout))
}

// Header returns the initial content of a new journal file.
func Header(date time.Time) string {
	title := Title(date)
	return title + "\n" + strings.Repeat("=", len(title)) + "\n\n"
}

// ValidateDir reports ErrInvalidDirectory unless dir exists and is a directory.
func ValidateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: '%s' does not exist", ErrInvalidDirectory, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: '%s' is not a directory", ErrInvalidDirectory, dir)
	}
	return nil
}

// Store resolves journal files inside a single output directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is not validated here;
// callers check it with ValidateDir first.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for date.
func (s *Store) Path(date time.Time) string {
	return filepath.Join(s.dir, Title(date)+ext)
}

// Exists reports whether the file for date exists.
func (s *Store) Exists(date time.Time) bool {
	_, err := os.Stat(s.Path(date))
	return err == nil
}

// LineCount returns the number of lines in the file for date, header
// included. A trailing line without a newline counts as a line. A missing
// file has zero lines.
func (s *Store) LineCount(date time.Time) (int, error) {
	f, err := os.Open(s.Path(date))
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: opening file: %v", ErrStorage, err)
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	count := 0
	last := byte('\n')
	for {
		n, err := f.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: reading file: %v", ErrStorage, err)
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}

// EnsureCreated creates the file for date with its header unless it already
// exists. It returns the path and whether the file was created by this call.
// Existing content is never modified.
func (s *Store) EnsureCreated(date time.Time) (string, bool, error) {
	path := s.Path(date)
	if s.Exists(date) {
		logs.Logger.Printf("journal file exists: %s", path)
		return path, false, nil
	}

	created, err := s.writeNew(path, []byte(Header(date)))
	if err != nil {
		return "", false, err
	}
	logs.Logger.Printf("journal file created=%t: %s", created, path)
	return path, created, nil
}

// writeNew creates path exclusively and writes data in a single call. It
// reports created=false when path already exists, leaving it untouched.
func (s *Store) writeNew(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: creating %s: %v", ErrStorage, path, err)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(path)
		return false, fmt.Errorf("%w: writing %s: %v", ErrStorage, path, werr)
	}
	return true, nil
}
