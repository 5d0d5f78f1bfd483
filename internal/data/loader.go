package data

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sync"
)

//go:embed sample/*.txt
var sampleFiles embed.FS

// Sample holds the embedded seed records used when no account or activity
// file is configured
type Sample struct {
	accounts   []byte
	activities []byte
}

var (
	instance *Sample
	once     sync.Once
	loadErr  error
)

// Load reads the embedded sample files.
// This is thread-safe and will only load data once
func Load() (*Sample, error) {
	once.Do(func() {
		instance = &Sample{}
		loadErr = instance.loadAll()
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

func (s *Sample) loadAll() error {
	data, err := sampleFiles.ReadFile("sample/accounts.txt")
	if err != nil {
		return fmt.Errorf("failed to read accounts.txt: %w", err)
	}
	s.accounts = data

	data, err = sampleFiles.ReadFile("sample/activities.txt")
	if err != nil {
		return fmt.Errorf("failed to read activities.txt: %w", err)
	}
	s.activities = data

	return nil
}

// Accounts returns a fresh reader over the sample account records
func (s *Sample) Accounts() io.Reader {
	return bytes.NewReader(s.accounts)
}

// Activities returns a fresh reader over the sample activity records
func (s *Sample) Activities() io.Reader {
	return bytes.NewReader(s.activities)
}

// CountRecords returns the number of non-blank lines in b
func CountRecords(b []byte) int {
	n := 0
	for line := range bytes.Lines(b) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
