package safenorm

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultMaxKeysLength is the default budget of ExtractExceptionKeysForMessage.
const DefaultMaxKeysLength = 40

// NoKeys is returned by ExtractExceptionKeysForMessage for values without keys.
const NoKeys = "[object has no keys]"

// ExtractExceptionKeysForMessage builds a sorted, length-bounded list of the
// keys of a captured non-error exception, for messages such as
// "Non-error exception captured with keys: bar, baz, foo". maxLength <= 0
// selects DefaultMaxKeysLength.
func (n *Normalizer) ExtractExceptionKeysForMessage(exception any, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxKeysLength
	}
	entries := ownEntries(n.WalkSource(resolve(exception)))
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return NoKeys
	}
	if utf8.RuneCountInString(keys[0]) >= maxLength {
		return Truncate(keys[0], maxLength)
	}
	for included := len(keys); included > 0; included-- {
		serialized := strings.Join(keys[:included], ", ")
		if utf8.RuneCountInString(serialized) > maxLength {
			continue
		}
		if included == len(keys) {
			return serialized
		}
		return Truncate(serialized, maxLength)
	}
	return ""
}

// ExtractExceptionKeysForMessage summarizes keys with the default Normalizer.
func ExtractExceptionKeysForMessage(exception any, maxLength int) string {
	return defaultNormalizer.ExtractExceptionKeysForMessage(exception, maxLength)
}

// Truncate returns s cut to max runes followed by "...". s is returned
// unchanged when max is 0 or s already fits.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "..."
}
