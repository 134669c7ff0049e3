package entry

// RawEntry is a single work session as read from the input file.
type RawEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// Coefficient is the billing multiplier decoded from the leading token of a note.
type Coefficient struct {
	Value               float64 `json:"value"`
	CarriesFromPrevious bool    `json:"carries_from_previous"`
	RawToken            string  `json:"raw_token"`
}

// Entry is an annotated session. Start and End are milliseconds since the
// Unix epoch; an unparseable timestamp is stored as NaN.
type Entry struct {
	Start         float64     `json:"start"`
	End           float64     `json:"end"`
	DurationHours float64     `json:"duration_hours"`
	Coefficient   Coefficient `json:"coefficient"`
	Note          string      `json:"note"`
	ResolvedNote  string      `json:"resolved_note"`
	Topic         string      `json:"topic"`
	TopicCarried  bool        `json:"topic_carried"`
	Cost          float64     `json:"cost"`
}

// Carried reports whether the entry's topic was taken from its predecessor.
// A carry marker on the first entry has no predecessor and is not a carry.
func (e Entry) Carried() bool {
	return e.TopicCarried
}

// WarningKind classifies a non-fatal annotation problem.
type WarningKind string

const (
	// WarnFirstEntryCarry means the first entry asked to carry a topic from a
	// predecessor that does not exist.
	WarnFirstEntryCarry WarningKind = "first_entry_carry"
)

// Warning describes a non-fatal problem found while annotating an entry.
type Warning struct {
	Index   int         // 0-based position in the input
	Kind    WarningKind // What went wrong
	Note    string      // Note as written
	Message string      // Human-readable description
}

// AnnotateResult holds the annotated entries and any warnings raised.
type AnnotateResult struct {
	Entries  []Entry
	Warnings []Warning
}
