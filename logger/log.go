// This file is part of w65c816.
//
// w65c816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// w65c816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with w65c816.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a small central, deduplicating log. It is used only by
// the ambient host-harness layer (memmap, cmd/monitor) — the CPU core never
// imports it, by design: the core has no error returns and no side channel
// beyond its three bus callbacks.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Entry is a single logged event, possibly representing several identical
// consecutive events collapsed into one.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

const maxEntries = 1000

type central struct {
	mu      sync.Mutex
	entries []Entry
	echo    bool
}

var log = &central{entries: make([]Entry, 0)}

// SetEcho controls whether logged entries are also written to stdout as
// they arrive. cmd/monitor turns this on when run with -echo.
func SetEcho(echo bool) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.echo = echo
}

// Log records an event under the given tag. Consecutive identical
// (tag, detail) pairs are collapsed into a single repeat-counted entry
// rather than flooding the log.
func Log(tag, detail string) {
	log.mu.Lock()
	defer log.mu.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if n := len(log.entries); n > 0 {
		last := &log.entries[n-1]
		if last.tag == tag && last.detail == detail {
			last.repeated++
			last.Timestamp = time.Now()
			if log.echo {
				io.WriteString(os.Stdout, last.String())
			}
			return
		}
	}

	e := Entry{Timestamp: time.Now(), tag: tag, detail: detail}
	log.entries = append(log.entries, e)
	if len(log.entries) > maxEntries {
		log.entries = log.entries[len(log.entries)-maxEntries:]
	}
	if log.echo {
		io.WriteString(os.Stdout, e.String())
	}
}

// Logf is Log with a formatted detail string.
func Logf(tag, format string, args ...interface{}) {
	Log(tag, fmt.Sprintf(format, args...))
}

// Tail writes the most recent n entries to output.
func Tail(output io.Writer, n int) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if n > len(log.entries) {
		n = len(log.entries)
	}
	for _, e := range log.entries[len(log.entries)-n:] {
		io.WriteString(output, e.String())
	}
}

// Clear discards all entries. Used between test runs.
func Clear() {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.entries = log.entries[:0]
}
