// Package naming turns page titles and URL slugs into folder names that are
// valid on every filesystem the downloads may land on (Windows being the
// strictest).
package naming

import "strings"

// FallbackName is used when sanitization leaves nothing usable.
const FallbackName = "gallery"

// MaxNameLength caps folder names well below the 255-char limit common to
// NTFS/ext4/APFS, leaving room for the base directory prefix.
const MaxNameLength = 200

// invalidChars are the characters Windows forbids in folder names.
const invalidChars = `<>:"/\|?*`

// Sanitize converts a raw title or URL slug into a safe folder name.
// Invalid characters become underscores, control characters are dropped, and
// leading/trailing spaces and dots are trimmed. The result is deterministic
// and idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r < 0x20:
			// Control characters are dropped entirely.
		case strings.ContainsRune(invalidChars, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	name := strings.Trim(b.String(), " .")

	if runes := []rune(name); len(runes) > MaxNameLength {
		name = strings.Trim(string(runes[:MaxNameLength]), " .")
	}

	if name == "" {
		return FallbackName
	}
	return name
}
