package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",
}

// Slugify turns s into a lowercase ASCII url segment.
// Accents are stripped, Cyrillic is transliterated and every other run of
// non-alphanumerics becomes a single dash.
func Slugify(s string) string {
	// NFC first so й and ё survive the mark stripping below as single runes
	lowered := strings.ToLower(norm.NFC.String(s))

	var translit strings.Builder
	for _, r := range lowered {
		if t, ok := cyrillic[r]; ok {
			translit.WriteString(t)
			continue
		}
		translit.WriteRune(r)
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, translit.String())
	if err != nil {
		plain = translit.String()
	}

	var b strings.Builder
	dash := false
	for _, r := range plain {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
