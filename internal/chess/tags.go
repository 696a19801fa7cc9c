package chess

// TagName is one of the metadata tags stored alongside a game.
type TagName int

const (
	EventTag TagName = iota
	SiteTag
	DateTag
	RoundTag
	WhiteTag
	BlackTag
	ResultTag
	PlyCountTag
	TerminationTag
	NumberOfTags // Sentinel, must be last
)

// TagNameStrings maps tag indices to their string representations.
var TagNameStrings = map[TagName]string{
	EventTag:       "Event",
	SiteTag:        "Site",
	DateTag:        "Date",
	RoundTag:       "Round",
	WhiteTag:       "White",
	BlackTag:       "Black",
	ResultTag:      "Result",
	PlyCountTag:    "PlyCount",
	TerminationTag: "Termination",
}

// StringToTagName maps tag strings to their indices.
var StringToTagName = make(map[string]TagName, len(TagNameStrings))

func init() {
	for k, v := range TagNameStrings {
		StringToTagName[v] = k
	}
}

func (t TagName) String() string {
	if s, ok := TagNameStrings[t]; ok {
		return s
	}
	return "Unknown"
}

// Tags holds a game's metadata by tag name. Names outside the predefined
// set are allowed.
type Tags map[string]string

// Get returns the value of a predefined tag, or "" when unset.
func (t Tags) Get(name TagName) string {
	return t[name.String()]
}

// Set assigns a predefined tag.
func (t Tags) Set(name TagName, value string) {
	t[name.String()] = value
}
