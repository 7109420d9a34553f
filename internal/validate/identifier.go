package validate

import "regexp"

var identifierPattern = regexp.MustCompile(`^(m|col)[0-9]{5}$`)

// IsValidIdentifier reports whether s is a module identifier ("m" and five
// digits) or a collection identifier ("col" and five digits).
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

func invalidIdentifier(id string) string {
	return id + " is not a valid identifier"
}
