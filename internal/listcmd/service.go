package listcmd

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

type service struct {
	kw              Keywords
	addByLength     []string
	newListPatterns []*regexp.Regexp
	namePatterns    []*regexp.Regexp
	splitPattern    *regexp.Regexp
	newID           func() string
}

// New compiles the keyword tables into a Service. It panics on an invalid pattern,
// like regexp.MustCompile, since the tables ship with the binary.
func New(kw Keywords) Service {
	s := &service{
		kw:           kw,
		splitPattern: regexp.MustCompile(itemSplitPattern),
		newID:        uuid.NewString,
	}

	for _, p := range kw.NewListPatterns {
		s.newListPatterns = append(s.newListPatterns, regexp.MustCompile(p))
	}
	for _, p := range kw.NamePatterns {
		re := regexp.MustCompile(`(?i)` + p)
		if re.SubexpIndex("name") < 0 {
			panic("listcmd: name pattern without name group: " + p)
		}
		s.namePatterns = append(s.namePatterns, re)
	}

	// Longest first so "agregar a la lista" is removed before "agregar".
	s.addByLength = append([]string(nil), kw.AddToList...)
	sort.SliceStable(s.addByLength, func(i, j int) bool {
		return len(s.addByLength[i]) > len(s.addByLength[j])
	})

	return s
}

func (s *service) Version() string {
	return s.kw.Version
}

// hasKeywordPrefix reports whether text starts with kw as a whole phrase,
// so "lista de" does not match "lista devuelta".
func hasKeywordPrefix(text, kw string) bool {
	if !strings.HasPrefix(text, kw) {
		return false
	}
	rest := text[len(kw):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// stripLeadSeparator drops surrounding whitespace and at most one leading separator.
func stripLeadSeparator(text string) string {
	text = strings.TrimSpace(text)
	if text != "" && strings.ContainsRune(leadSeparators, rune(text[0])) {
		text = strings.TrimSpace(text[1:])
	}
	return text
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}
