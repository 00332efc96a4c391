package newsletter

import (
	"strings"
	"time"
)

// ExpandVars performs simple placeholder substitutions for template strings
// used in config-provided text fields (e.g., the digest title).
//
// Supported variables:
// - {.CurrentDate} => formatted as YYYY-MM-DD (local time)
// - {.CurrentTime} => formatted as HH:MM (local time)
func ExpandVars(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	local := now.Local()
	r := strings.NewReplacer(
		"{.CurrentDate}", local.Format("2006-01-02"),
		"{.CurrentTime}", local.Format("15:04"),
	)
	return r.Replace(s)
}
