package listcmd

import "strings"

// ExtractName returns the title of a new-list command ("lista de supermercado" -> "Supermercado")
// and the text following it. Without a match the input is returned unchanged.
func (s *service) ExtractName(text string) NameExtraction {
	trimmed := strings.TrimSpace(text)

	for _, re := range s.namePatterns {
		loc := re.FindStringSubmatchIndex(trimmed)
		if loc == nil {
			continue
		}

		idx := re.SubexpIndex("name")
		name := strings.TrimSpace(trimmed[loc[2*idx]:loc[2*idx+1]])
		if name == "" {
			continue
		}

		return NameExtraction{
			ListName:      titleCase(name),
			RemainingText: stripLeadSeparator(trimmed[loc[1]:]),
		}
	}

	return NameExtraction{RemainingText: text}
}
