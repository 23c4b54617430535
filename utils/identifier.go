// SPDX-License-Identifier: EPL-2.0

package utils

import "strings"

// SanitizeIdentifier maps s to a valid C identifier: spaces, dashes and
// dots become underscores, other invalid characters are dropped, and a
// leading digit gets an underscore prefix. An empty result becomes "_".
func SanitizeIdentifier(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.':
			b.WriteRune('_')
		}
	}

	out := b.String()
	if out == "" {
		return "_"
	}

	if out[0] >= '0' && out[0] <= '9' {
		return "_" + out
	}

	return out
}
