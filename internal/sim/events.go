package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// maxLogEntries caps the event log; the oldest entries fall off first.
const maxLogEntries = 100

func newEntry(date time.Time, sentiment Sentiment, title, format string, args ...any) LogEntry {
	return LogEntry{
		ID:          uuid.NewString(),
		Date:        date,
		Title:       title,
		Description: fmt.Sprintf(format, args...),
		Sentiment:   sentiment,
	}
}

// pushEvents prepends entries (newest first) and enforces the log cap.
func (s *State) pushEvents(entries ...LogEntry) {
	if len(entries) == 0 {
		return
	}
	s.EventLog = append(entries, s.EventLog...)
	if len(s.EventLog) > maxLogEntries {
		s.EventLog = s.EventLog[:maxLogEntries]
	}
}

// reject appends a rejection entry and leaves everything else untouched.
// Business-rule violations are data, not errors.
func (s *State) reject(title, format string, args ...any) *State {
	s.pushEvents(newEntry(s.Date, SentimentNegative, title, format, args...))
	return s
}
