package model

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidIdentifier reports whether s is usable as a user or session id. The
// same ids become document keys, so path separators are never allowed.
func ValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
