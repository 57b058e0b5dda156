// Package storage reads and writes the markdown task file.
//
// The file format is deliberately simple: the first content line is a
// fixed header, task lines are markdown checkboxes, and every other line
// is preserved verbatim. The accessor is self-healing: a missing or
// malformed file is recreated with a valid header, keeping any lines
// that still look like tasks.
package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Header is the first content line of a valid task file.
const Header = "# Task List"

// taskPrefix marks a line as a task line regardless of completion state.
const taskPrefix = "- ["

// Store reads and writes a single task file. The path is fixed at
// construction so every caller (and every test) can point at its own
// file.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the task file if it is missing and repairs it if the
// header is absent or the file is unreadable. Task lines found in a
// malformed file are kept. Ensure never reports an error to the caller;
// failures are logged and the file ends up valid whenever the
// filesystem allows it.
func (s *Store) Ensure() {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.writeFresh(nil); err != nil {
			log.Warn("create task file", "path", s.path, "err", err)
		}
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Warn("task file unreadable, recreating", "path", s.path, "err", err)
		if err := s.writeFresh(nil); err != nil {
			log.Warn("recreate task file", "path", s.path, "err", err)
		}
		return
	}

	content := strings.TrimSpace(string(data))
	if content != "" && strings.HasPrefix(content, Header) {
		return
	}

	var salvaged []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, taskPrefix) {
			salvaged = append(salvaged, line)
		}
	}
	log.Debug("repairing task file", "path", s.path, "salvaged", len(salvaged))
	if err := s.writeFresh(salvaged); err != nil {
		log.Warn("repair task file", "path", s.path, "err", err)
	}
}

// Load returns the file's lines. On read failure it repairs the file
// and returns the minimal valid content instead of an error.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug("load failed, repairing", "path", s.path, "err", err)
		s.Ensure()
		return []string{Header, ""}
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// Save overwrites the file with the given lines joined by newlines plus
// a single trailing newline.
func (s *Store) Save(lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// writeFresh rewrites the file as a valid task list: header, blank
// line, then any salvaged task lines.
func (s *Store) writeFresh(tasks []string) error {
	lines := append([]string{Header, ""}, tasks...)
	return s.Save(lines)
}
