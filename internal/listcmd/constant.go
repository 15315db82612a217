package listcmd

// KeywordsVersion identifies the keyword tables shipped with this build.
// Bump it whenever a phrase is added, removed or reordered.
const KeywordsVersion = "2024.1"

// Keywords holds the phrase tables for every supported language (es, en, pt).
// All phrases are lower-case. Languages are matched as one union; there is no
// language detection step, so mixed-language transcripts work.
type Keywords struct {
	Version string

	// AddToList phrases are matched anywhere in the text and win over NewList.
	AddToList []string

	// NewList phrases must appear at the very start of the text.
	NewList []string

	// NewListPatterns are regex prefixes for phrasings with a free subject ("new grocery list").
	NewListPatterns []string

	// NamePatterns are tried in order; each must define a "name" capture group.
	NamePatterns []string

	// ItemPrefixes is stripped once from the start of the text before splitting into items.
	// Ordered most specific first: no entry may be a prefix of a later one.
	ItemPrefixes []string
}

// DefaultKeywords returns a fresh copy of the built-in tables.
func DefaultKeywords() Keywords {
	return Keywords{
		Version: KeywordsVersion,
		AddToList: []string{
			// es
			"agregar a la lista", "añadir a la lista", "agrega a la lista", "añade a la lista",
			"agregar", "añadir", "también",
			// en
			"add to the list", "add to my list", "add to list", "also add",
			// pt
			"adicionar à lista", "adicionar na lista", "adicionar a lista", "acrescentar à lista",
			"adicionar", "acrescentar", "também",
		},
		NewList: []string{
			// es
			"nueva lista", "crear una lista", "crear lista", "hacer una lista",
			"lista del", "lista de", "lista para",
			// en
			"new checklist for", "new list", "create a list", "create list", "make a list",
			"shopping list", "grocery list", "to do list", "todo list",
			// pt
			"nova lista", "criar uma lista", "criar lista", "fazer uma lista",
			"lista do", "lista da",
		},
		NewListPatterns: []string{
			`^new\s+[\p{L}\p{N}_]+\s+list\b`,
			`^new\s+checklist\s+for\b`,
		},
		NamePatterns: []string{
			`^new\s+checklist\s+for\s+(?P<name>[^,.:;]+)`,
			`^new\s+(?P<name>[^,.:;]+?)\s+list\b`,
			`^nueva\s+lista\s+(?:del|de|para)\s+(?P<name>[^,.:;]+)`,
			`^lista\s+del\s+(?P<name>[^,.:;]+)`,
			`^lista\s+de\s+(?P<name>[^,.:;]+)`,
			`^lista\s+para\s+(?P<name>[^,.:;]+)`,
			`^lista\s+do\s+(?P<name>[^,.:;]+)`,
			`^lista\s+da\s+(?P<name>[^,.:;]+)`,
			`^nova\s+lista\s+de\s+(?P<name>[^,.:;]+)`,
			`^nova\s+(?P<name>[^,.:;]+?)\s+lista\b`,
		},
		ItemPrefixes: []string{
			// es
			"nueva lista de compras", "nueva lista del", "nueva lista de", "nueva lista para", "nueva lista",
			"crear una lista de", "crear una lista", "crear lista de", "crear lista",
			"hacer una lista de", "hacer una lista",
			"lista del supermercado", "lista de supermercado", "lista de compras",
			"lista del", "lista de", "lista para",
			"agregar a la lista", "añadir a la lista", "agrega a la lista", "añade a la lista",
			"agregar", "añadir", "también",
			// en
			"new shopping list", "new grocery list", "new checklist for", "new list of", "new list",
			"create a list of", "create a list", "create list", "make a list of", "make a list",
			"shopping list", "grocery list", "to do list", "todo list",
			"add to the list", "add to my list", "add to list", "also add", "add",
			// pt
			"nova lista de compras", "nova lista de", "nova lista",
			"criar uma lista de", "criar uma lista", "criar lista de", "criar lista",
			"fazer uma lista de", "fazer uma lista",
			"lista do", "lista da",
			"adicionar à lista", "adicionar na lista", "adicionar a lista", "acrescentar à lista",
			"adicionar", "acrescentar", "também",
		},
	}
}

const (
	// itemSplitPattern splits on ", " / "; " / ". " or the conjunctions "y" / "and".
	// A conjunction right after punctuation ("a, b, and c") is part of the same separator.
	itemSplitPattern = `[,;.]\s+(?:(?:y|and)\s+)?|\s+(?:y|and)\s+`

	// separatorCutset is trimmed from fragment edges.
	separatorCutset = " \t\r\n,.;:!?"
	leadSeparators  = ",.:;"
)
