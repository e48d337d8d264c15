package utils

import "regexp"

// Canonical 8-4-4-4-12 form only. uuid.Parse would also accept braced,
// urn-prefixed and unhyphenated forms, which route parameters must not.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(id)
}
