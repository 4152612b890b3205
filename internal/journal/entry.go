package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EntryID is the optional identifier of a journal record. The service sends
// numbers or strings; both decode to their textual form and null decodes to
// the empty ID.
type EntryID string

func (id *EntryID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode entry id: %w", err)
		}
		*id = EntryID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("decode entry id %s: %w", trimmed, err)
	}
	*id = EntryID(n.String())
	return nil
}

// Entry is one journal record as returned by the journals endpoint.
type Entry struct {
	ID          EntryID `json:"id"`
	EntryDate   string  `json:"entry_date"`
	EntryTime   string  `json:"entry_time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// HasID reports whether the service supplied an identifier.
func (e Entry) HasID() bool {
	return e.ID != ""
}

// Key returns a list key for the entry at position index. Identifiers are not
// guaranteed unique, so callers must not use Key for lookups.
func (e Entry) Key(index int) string {
	if e.HasID() {
		return string(e.ID)
	}
	return "journal-" + strconv.Itoa(index)
}

// IndexByID returns the position of the first entry carrying id, or -1.
func IndexByID(entries []Entry, id EntryID) int {
	if id == "" {
		return -1
	}
	for i, entry := range entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}
