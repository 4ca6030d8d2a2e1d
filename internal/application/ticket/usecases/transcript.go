package usecases

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// TranscriptMessage is one channel message flattened for export.
type TranscriptMessage struct {
	Author      string
	Timestamp   time.Time
	EditedAt    *time.Time
	Content     string
	Attachments []TranscriptAttachment
}

// TranscriptAttachment is a file referenced by a message.
type TranscriptAttachment struct {
	Filename string
	URL      string
	IsImage  bool
}

// transcriptTimeLayout matches the human-readable timestamps in exports.
const transcriptTimeLayout = "02/01/2006 15:04:05"

// RenderTranscript serializes a channel's history in chronological order to
// the line-oriented export format.
func RenderTranscript(messages []TranscriptMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(fmt.Sprintf("%s on %s: %s",
			msg.Author, msg.Timestamp.Format(transcriptTimeLayout), msg.Content))
		if msg.EditedAt != nil {
			b.WriteString(fmt.Sprintf(" (Edited at %s)", msg.EditedAt.Format(transcriptTimeLayout)))
		}
		b.WriteString("\n")

		for _, att := range msg.Attachments {
			kind := "file"
			if att.IsImage {
				kind = "image"
			}
			b.WriteString(fmt.Sprintf("  [%s] %s: %s\n", kind, att.Filename, att.URL))
		}
	}
	return b.String()
}

// ExportGuard is the single-writer guard for transcript exports: at most one
// export per channel at a time, enforced in-process rather than by a
// file-existence probe.
type ExportGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewExportGuard() *ExportGuard {
	return &ExportGuard{inFlight: make(map[string]struct{})}
}

// TryAcquire reserves the channel for export. Returns false when an export
// is already running for it.
func (g *ExportGuard) TryAcquire(channelID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[channelID]; busy {
		return false
	}
	g.inFlight[channelID] = struct{}{}
	return true
}

// Release frees the channel after the export finished or failed.
func (g *ExportGuard) Release(channelID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, channelID)
}
