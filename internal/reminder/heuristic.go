package reminder

import "strings"

// reminderVocabulary is matched as a case-insensitive substring.
var reminderVocabulary = []string{
	// es
	"recordar", "recuérdame", "recuerdame", "avisar", "avísame", "avisame", "alarma",
	// en
	"remind", "reminder", "alarm",
	// pt
	"lembrar", "lembre", "lembrete", "avise",
}

func mentionsReminder(transcript string) bool {
	lower := strings.ToLower(transcript)
	for _, w := range reminderVocabulary {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
