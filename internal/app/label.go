package app

import (
	"fmt"
	"strings"
)

// DisplayLabel builds the option string shown for a ranked contributor:
// "{name} ({login}) {commits}", or "{login} {commits}" when the user has no name.
// The format is load bearing: ParseLogin recovers the login from it.
func DisplayLabel(u User, commits int) string {
	if u.Name != "" {
		return fmt.Sprintf("%s (%s) %d", u.Name, u.Login, commits)
	}
	return fmt.Sprintf("%s %d", u.Login, commits)
}

// ParseLogin recovers the login from a display label.
// If the label contains "(", the login is the substring between the first "("
// and the first ")" after it. Otherwise it is the first whitespace-delimited token.
// Returns empty string for labels no login can be recovered from.
func ParseLogin(label string) string {
	if start := strings.Index(label, "("); start >= 0 {
		rest := label[start+1:]
		end := strings.Index(rest, ")")
		if end < 0 {
			return ""
		}
		return rest[:end]
	}

	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
