package inspection

import "strings"

// NormalizeAddress reduces a free-text address to the building-identifying
// portion used for prefix matching: upper-cased, trimmed, and cut before
// the first comma (municipal address strings append city/state/zip after
// a comma).
func NormalizeAddress(in string) string {
	head := strings.SplitN(in, ",", 2)[0]
	return strings.ToUpper(strings.TrimSpace(head))
}
