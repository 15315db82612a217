package usecase

import (
	"strings"
	"unicode/utf8"
)

// htmlEntities decodes the entities speech-to-text engines and rich-text
// editors leave in transcripts. One pass, so "&amp;lt;" becomes "&lt;".
var htmlEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

func decodeHTMLEntities(s string) string {
	return htmlEntities.Replace(s)
}

const (
	noteTagPrefix = "#note/"
	summaryLimit  = 80
)

// splitTags separates trailing tag lines from a stored note body. Tags other
// than the note-type tag are returned so they can be written back.
func splitTags(content string) (string, []string) {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	var kept []string
	end := len(lines)
	for end > 0 {
		line := strings.TrimSpace(lines[end-1])
		if line == "" {
			end--
			continue
		}
		fields, ok := tagFields(line)
		if !ok {
			break
		}
		for _, f := range fields {
			if !strings.HasPrefix(f, noteTagPrefix) {
				kept = append(kept, f)
			}
		}
		end--
	}

	return strings.TrimRight(strings.Join(lines[:end], "\n"), "\n"), kept
}

// tagFields reports whether every field of line is a tag such as "#note/text".
// Markdown headings ("# Title", "## Title") are not tags.
func tagFields(line string) ([]string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	for _, f := range fields {
		if len(f) < 2 || f[0] != '#' || strings.Trim(f, "#") == "" || f[1] == '#' {
			return nil, false
		}
	}
	return fields, true
}

// joinBlocks concatenates non-empty blocks with a newline.
func joinBlocks(blocks ...string) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimRight(b, "\n"); strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n")
}

// truncate cuts s to at most limit runes, adding an ellipsis when shortened.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}
