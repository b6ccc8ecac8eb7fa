package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileName      = "port_assigner.log"
	maxFileSizeMB = 1
	maxFileAgeDay = 30
)

// File is the run log in a directory. It rolls over when it grows past 1 MB
// and on the first write of a new day.
type File struct {
	mu  sync.Mutex
	lj  *lumberjack.Logger
	day string
	now func() time.Time
}

func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)

	f := &File{
		lj: &lumberjack.Logger{
			Filename:  path,
			MaxSize:   maxFileSizeMB,
			MaxAge:    maxFileAgeDay,
			LocalTime: true,
		},
		now: time.Now,
	}

	if info, err := os.Stat(path); err == nil {
		f.day = info.ModTime().Format(time.DateOnly)
	}

	return f, nil
}

// WithClock replaces the clock used to detect a new day.
func (f *File) WithClock(now func() time.Time) *File {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
	return f
}

// Path is the file currently written to.
func (f *File) Path() string {
	return f.lj.Filename
}

func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	day := f.now().Format(time.DateOnly)
	if f.day != "" && f.day != day {
		if err := f.lj.Rotate(); err != nil {
			return 0, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}
	f.day = day

	return f.lj.Write(p)
}

func (f *File) Close() error {
	return f.lj.Close()
}
