package naming

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCategoryTokens are the category markers stripped from keywords
// when no configuration overrides them.
var DefaultCategoryTokens = []string{"res-", "arch-"}

// DefaultKeyword derives a keyword from a file name: the extension is
// dropped, compatibility forms and accents are folded, letters are
// lower-cased and every run of other characters becomes a single hyphen.
func DefaultKeyword(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	folded, _, err := transform.String(accentFolder(), base)
	if err != nil {
		folded = base
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// StripTokens removes every occurrence of each token from keyword.
func StripTokens(keyword string, tokens []string) string {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		keyword = strings.ReplaceAll(keyword, token, "")
	}
	return keyword
}
