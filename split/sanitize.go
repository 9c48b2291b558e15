package split

import "strings"

// reservedFilenameChars are not allowed in file names on at least one
// common platform.
const reservedFilenameChars = `\/:*?"<>|`

// SanitizeFilename replaces every character reserved by common file systems
// (`\ / : * ? " < > |`) with an underscore. All other characters are kept.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}
