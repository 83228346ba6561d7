package audit

import (
	"fmt"
	"strings"
)

// Severity ranks a reported violation.
type Severity int

const (
	SeverityIgnore Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityIgnore:  "ignore",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// ParseSeverity accepts the lower-case names, case-insensitively.
func ParseSeverity(text string) (Severity, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for k, v := range severityValueMap {
		if v == text {
			return k, nil
		}
	}

	return SeverityIgnore, fmt.Errorf("unknown severity %q", text)
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	v, err := ParseSeverity(string(rawtext))
	if err != nil {
		return err
	}

	*s = v
	return nil
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
