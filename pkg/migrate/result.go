package migrate

import (
	"fmt"
	"strings"
)

// Result is the immutable report of one migration run. Construct it through
// Migrate and consume it immediately; the unknown-tag list never changes
// afterwards.
type Result struct {
	unknown []string
}

// UnknownTags returns the out-of-vocabulary tag names found during the scan,
// deduplicated and in first-seen order. The returned slice is a copy.
func (r Result) UnknownTags() []string {
	if len(r.unknown) == 0 {
		return nil
	}
	out := make([]string, len(r.unknown))
	copy(out, r.unknown)
	return out
}

// Success reports whether the scan found no unknown tags.
func (r Result) Success() bool {
	return len(r.unknown) == 0
}

// Message returns a human-readable summary suitable for the upgrade screen.
func (r Result) Message() string {
	if r.Success() {
		return "Templates migrated. All tags are recognised by the current engine."
	}
	return fmt.Sprintf(
		"Templates migrated with warnings: %d unrecognised tag(s) will be left as literal text: %s",
		len(r.unknown), strings.Join(r.unknown, ", "),
	)
}
