package reminder

import (
	"regexp"
	"strings"
)

var fenceMarker = regexp.MustCompile("```(?:json|JSON)?")

// sanitizeJSONResponse removes markdown fences and stray backticks, then keeps
// the span from the first '{' to the last '}'.
func sanitizeJSONResponse(text string) string {
	text = fenceMarker.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "`", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}
