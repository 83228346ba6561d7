package suppression

import "github.com/arthur-debert/ruleset/pkg/audit"

// UnusedKey identifies messages about suppressions that never matched.
const UnusedKey = "suppression.unused"

// UnusedAudit reports, per filter, every element that never suppressed an
// event. Run it after all files have been processed. Messages carry the
// suppressions file as their file and no line number.
func UnusedAudit(filters ...*Filter) []audit.Message {
	var msgs []audit.Message
	for _, f := range filters {
		if f == nil {
			continue
		}
		for _, e := range f.elements {
			if e.Used() {
				continue
			}
			msgs = append(msgs, audit.Message{
				File:     f.file,
				Line:     -1,
				Key:      UnusedKey,
				Text:     "Unused suppression: " + e.String(),
				Severity: audit.SeverityInfo,
			})
		}
	}
	return audit.SortMessages(msgs)
}
