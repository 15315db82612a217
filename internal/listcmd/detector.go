package listcmd

import "strings"

// Classify checks add-to-list phrases anywhere in the text first, then new-list
// phrases at the start. The order matters: "agregar" also shows up inside
// new-list sentences and must resolve to an addition.
func (s *service) Classify(text string) Match {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Match{Kind: KindNone}
	}

	for _, kw := range s.kw.AddToList {
		if strings.Contains(lower, kw) {
			return Match{Kind: KindAddToList, MatchedKeyword: kw}
		}
	}

	for _, kw := range s.kw.NewList {
		if hasKeywordPrefix(lower, kw) {
			return Match{Kind: KindNewList, MatchedKeyword: kw}
		}
	}

	for _, re := range s.newListPatterns {
		if m := re.FindString(lower); m != "" {
			return Match{Kind: KindNewList, MatchedKeyword: m}
		}
	}

	return Match{Kind: KindNone}
}

// StripAddKeywords removes every add-to-list phrase, wherever it occurs, since
// several may co-occur ("agregar también pan"). One leading separator is dropped.
func (s *service) StripAddKeywords(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range s.addByLength {
		lower = strings.ReplaceAll(lower, kw, " ")
	}
	return stripLeadSeparator(strings.Join(strings.Fields(lower), " "))
}
