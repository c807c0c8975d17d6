package repository

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/internal/model"
)

// full section texts ride along in paragraph entries, so lines can get big
const maxLineBytes = 4 << 20

// feedbackLog persists entries as newline-delimited JSON, one record per
// line, append-only. The file is never rewritten; corrupt lines stay where
// they are and are skipped on read.
type feedbackLog struct {
	mu   sync.Mutex
	path string
}

// NewFeedbackLog creates the feedback log backed by the given file. The
// file is created on first append.
func NewFeedbackLog(path string) FeedbackLogRepository {
	return &feedbackLog{path: path}
}

func (l *feedbackLog) Path() string {
	return l.path
}

// Append durably adds one entry. The serialized record goes out in a
// single write call under the lock, so concurrent appends never interleave
// partial lines.
func (l *feedbackLog) Append(entry *model.FeedbackEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// LoadAll returns every well-formed entry in arrival order. A missing log
// is an empty log, not an error.
func (l *feedbackLog) LoadAll() ([]model.FeedbackEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAll()
}

// Count returns the number of well-formed lines.
func (l *feedbackLog) Count() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (l *feedbackLog) readAll() ([]model.FeedbackEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []model.FeedbackEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry model.FeedbackEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			klog.V(6).Infof("[FeedbackLog] skipping corrupt line: %v", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
