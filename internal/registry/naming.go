package registry

import "strings"

// DefaultSuffix is the conventional storage document suffix.
const DefaultSuffix = "_transactions.json"

// FileName derives the storage document name for a user: lower-cased, spaces
// replaced with underscores, suffix appended. Pure, so the naming convention
// is testable without a filesystem.
func FileName(user, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	name := strings.ToLower(strings.TrimSpace(user))
	name = strings.ReplaceAll(name, " ", "_")
	return name + suffix
}

// Stem reverses FileName on a file name, returning the user stem and whether
// the name matched the convention. The stem is the normalized form of the
// user name, not necessarily the original spelling.
func Stem(fileName, suffix string) (string, bool) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if !strings.HasSuffix(fileName, suffix) {
		return "", false
	}
	stem := strings.TrimSuffix(fileName, suffix)
	if stem == "" {
		return "", false
	}
	return stem, true
}
