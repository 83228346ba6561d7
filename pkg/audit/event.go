// Package audit holds the values passed between modules, filters and the
// reporting layer during a run.
package audit

import (
	"fmt"
	"sort"
)

// Event is one violation raised by a module against a file.
type Event struct {
	FileName string
	Line     int
	Column   int
	// ModuleID is the user-assigned id property, when set.
	ModuleID string
	// Source is the canonical identifier of the module that raised the event.
	Source   string
	Key      string
	Message  string
	Severity Severity
}

// Message is a diagnostic produced by the tool itself rather than a module.
type Message struct {
	File     string   `json:"file" yaml:"file"`
	Line     int      `json:"line" yaml:"line"`
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"`
	Key      string   `json:"key" yaml:"key"`
	Text     string   `json:"text" yaml:"text"`
	Severity Severity `json:"severity" yaml:"severity"`
}

func (m Message) String() string {
	if m.Line < 0 {
		return fmt.Sprintf("[%s] %s: %s [%s]", m.Severity, m.File, m.Text, m.Key)
	}
	return fmt.Sprintf("[%s] %s:%d:%d: %s [%s]", m.Severity, m.File, m.Line, m.Column, m.Text, m.Key)
}

func (m Message) less(o Message) bool {
	if m.File != o.File {
		return m.File < o.File
	}
	if m.Line != o.Line {
		return m.Line < o.Line
	}
	if m.Column != o.Column {
		return m.Column < o.Column
	}
	if m.Key != o.Key {
		return m.Key < o.Key
	}
	return m.Text < o.Text
}

// SortMessages orders messages by position then text and drops exact
// duplicates. The input slice is reordered in place.
func SortMessages(msgs []Message) []Message {
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].less(msgs[j]) })

	out := msgs[:0]
	for i, m := range msgs {
		if i > 0 && m == msgs[i-1] {
			continue
		}
		out = append(out, m)
	}
	return out
}
