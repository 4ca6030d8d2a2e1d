// Package reasonlog appends ticket close reasons to per-user log files.
package reasonlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store writes one append-only file per {user_id}-{uuid_prefix} under dir.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Append records a close reason with the ticket's metadata. The directory is
// created on first use.
func (s *Store) Append(userID, ticketShortID, category, closedBy, reason string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create reason log dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.log", userID, ticketShortID)
	path := filepath.Join(s.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open reason log: %w", err)
	}
	defer file.Close()

	entry := fmt.Sprintf("[%s] category=%s closed_by=%s reason=%s\n",
		time.Now().Format(time.RFC3339), category, closedBy, reason)
	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write reason log: %w", err)
	}
	return nil
}
