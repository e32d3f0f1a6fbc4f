package importer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// taggedEntrySeparator splits the staff ID from the name in report cells of
// the form "1023 - Dr. Fatma Al Harthy".
const taggedEntrySeparator = " - "

// prefixPattern recognizes an honorific at the start of a name, optionally
// followed by a period. Mrs must come before Mr in the alternation.
var prefixPattern = regexp.MustCompile(`^(?i)(mrs|mr|ms|dr|prof)(\.\s*|\s+)`)

// SplitTransliteratedName normalizes a freeform transliterated Omani name into
// first, middle and last components:
//
//  1. hyphens become spaces,
//  2. the particle "Al" is merged with the following token ("Al Saadi" ->
//     "AlSaadi"), keeping the merged token's inner capital,
//  3. every token is title-cased,
//  4. the first token is the first name, the last token the last name, and
//     anything in between joins into the middle name.
//
// A single-token name yields an empty last name. That asymmetry is kept on
// purpose; downstream records treat it as a mononym.
func SplitTransliteratedName(fullName string) (first, middle, last string) {
	cleaned := strings.ReplaceAll(fullName, "-", " ")

	caser := cases.Title(language.English)
	words := strings.Fields(cleaned)
	titled := make([]string, 0, len(words))
	for _, w := range words {
		titled = append(titled, caser.String(w))
	}

	var parts []string
	for i := 0; i < len(titled); i++ {
		if strings.EqualFold(titled[i], "al") && i < len(titled)-1 {
			parts = append(parts, "Al"+titled[i+1])
			i++
			continue
		}
		parts = append(parts, titled[i])
	}

	if len(parts) == 0 {
		return "", "", ""
	}

	first = parts[0]
	if len(parts) > 2 {
		middle = strings.Join(parts[1:len(parts)-1], " ")
	}
	if len(parts) > 1 {
		last = parts[len(parts)-1]
	}
	return first, middle, last
}

// TaggedEntry is the parsed form of an "ID - Name" report cell.
type TaggedEntry struct {
	Username   string
	Prefix     *string
	FirstName  string
	MiddleName string
	LastName   string
}

// ParseTaggedEntry parses a compound "<ID> - <Name>" string, stripping an
// optional honorific prefix (Mr, Ms, Mrs, Dr, Prof) from the name. Unlike the
// transliterated normalizer, only the leading letter of each token is
// capitalized; internal casing is preserved.
func ParseTaggedEntry(entry string) (TaggedEntry, error) {
	idPart, namePart, found := strings.Cut(entry, taggedEntrySeparator)
	if !found {
		return TaggedEntry{}, fmt.Errorf("%w: %q is missing the %q separator",
			apperrors.ErrInvalidRecordFormat, entry, taggedEntrySeparator)
	}

	parsed := TaggedEntry{Username: strings.TrimSpace(idPart)}

	name := strings.TrimSpace(namePart)
	if m := prefixPattern.FindStringSubmatch(name); m != nil {
		prefix := canonicalPrefix(m[1])
		parsed.Prefix = &prefix
		name = strings.TrimSpace(name[len(m[0]):])
	}

	tokens := strings.Fields(name)
	for i, tok := range tokens {
		tokens[i] = capitalizeFirst(tok)
	}

	switch {
	case len(tokens) == 0:
		// Nothing left after the prefix; the record keeps empty name fields.
	case len(tokens) == 1:
		parsed.FirstName = tokens[0]
	default:
		parsed.FirstName = tokens[0]
		parsed.LastName = tokens[len(tokens)-1]
		parsed.MiddleName = strings.Join(tokens[1:len(tokens)-1], " ")
	}

	return parsed, nil
}

// canonicalPrefix maps a matched honorific to its stored form (Mr, Ms, Mrs,
// Dr, Prof) regardless of the casing in the report.
func canonicalPrefix(matched string) string {
	return capitalizeFirst(strings.ToLower(matched))
}

// capitalizeFirst upper-cases the leading rune of a token and leaves the rest
// untouched.
func capitalizeFirst(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || r == utf8.RuneError {
		return token
	}
	return string(unicode.ToUpper(r)) + token[size:]
}
