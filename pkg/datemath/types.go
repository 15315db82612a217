package datemath

// Locale selects the calendar date layout used when presenting dates.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
	LocalePT Locale = "pt"
)

const (
	layoutDayFirst   = "02/01/2006"
	layoutMonthFirst = "01/02/2006"
	layoutClock      = "15:04"
)

// isoLayouts are tried in order by ParseISO. Layouts without an offset are
// interpreted in the parser's location.
var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}
