package matching

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var sampleTags = chess.Tags{
	"Event":    "Club Open",
	"Date":     "2021.03.14",
	"White":    "Fischer, Robert",
	"Black":    "Spassky, Boris",
	"Result":   "1-0",
	"PlyCount": "82",
}

func TestTagMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		value    string
		op       TagOperator
		expected bool
	}{
		{"equal ignores case", "Result", "1-0", OpEqual, true},
		{"equal", "Event", "club open", OpEqual, true},
		{"not equal", "Result", "0-1", OpNotEqual, true},
		{"not equal missing tag", "Round", "3", OpNotEqual, true},
		{"equal missing tag", "Round", "3", OpEqual, false},
		{"contains", "White", "FISCHER", OpContains, true},
		{"regex", "Black", "^Spas", OpRegex, true},
		{"regex no match", "Black", "^Boris", OpRegex, false},
		{"date before", "Date", "2022.01.01", OpLessThan, true},
		{"date unknown month", "Date", "2021.??.??", OpGreaterOrEqual, true},
		{"date after", "Date", "2021.03.15", OpGreaterThan, false},
		{"number", "PlyCount", "100", OpLessThan, true},
		{"number not text order", "PlyCount", "9", OpGreaterThan, true},
		{"text order", "Event", "Budapest", OpGreaterThan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			testutil.AssertNoError(t, tm.AddCriterion(tt.tag, tt.value, tt.op))
			testutil.AssertEqual(t, tm.Match(sampleTags), tt.expected)
		})
	}
}

func TestTagMatcher_NoCriteria(t *testing.T) {
	tm := NewTagMatcher()
	testutil.AssertTrue(t, tm.Match(nil), "empty matcher accepts anything")
	testutil.AssertEqual(t, tm.CriteriaCount(), 0)
}

func TestTagMatcher_AllMustMatch(t *testing.T) {
	tm := NewTagMatcher()
	testutil.AssertNoError(t, tm.AddTagCriterion(chess.ResultTag, "1-0"))
	testutil.AssertNoError(t, tm.AddTagCriterion(chess.WhiteTag, "Fischer, Robert"))
	testutil.AssertTrue(t, tm.Match(sampleTags), "both match")

	testutil.AssertNoError(t, tm.AddTagCriterion(chess.BlackTag, "Petrosian"))
	testutil.AssertFalse(t, tm.Match(sampleTags), "third fails")
	testutil.AssertEqual(t, tm.CriteriaCount(), 3)
}

func TestTagMatcher_Player(t *testing.T) {
	tests := []struct {
		name     string
		soundex  bool
		player   string
		expected bool
	}{
		{"white substring", false, "fischer", true},
		{"black substring", false, "Boris", true},
		{"absent", false, "Tal", false},
		{"soundex", true, "Spasky, Boris", true},
		{"soundex no match", true, "Karpov", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			tm.SetUseSoundex(tt.soundex)
			testutil.AssertNoError(t, tm.AddPlayerCriterion(tt.player))
			testutil.AssertEqual(t, tm.Match(sampleTags), tt.expected)
		})
	}
}

func TestTagMatcher_SubstringMatch(t *testing.T) {
	tm := NewTagMatcher()
	tm.SetSubstringMatch(true)
	testutil.AssertNoError(t, tm.AddCriterion("Event", "open", OpEqual))
	testutil.AssertTrue(t, tm.Match(sampleTags), "substring")
}

func TestTagMatcher_BadRegex(t *testing.T) {
	tm := NewTagMatcher()
	err := tm.AddCriterion("White", "[invalid", OpRegex)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestTagMatcher_ParseCriterion(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantVal  string
		wantOp   TagOperator
	}{
		{`White "Fischer"`, "White", "Fischer", OpEqual},
		{`Date >= "2020.01.01"`, "Date", "2020.01.01", OpGreaterOrEqual},
		{`Date<"2020"`, "Date", "2020", OpLessThan},
		{`Result <> "1/2-1/2"`, "Result", "1/2-1/2", OpNotEqual},
		{`Result != "*"`, "Result", "*", OpNotEqual},
		{`PlyCount > 40`, "PlyCount", "40", OpGreaterThan},
		{`Black ~ "^Sp"`, "Black", "^Sp", OpRegex},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			testutil.AssertNoError(t, tm.ParseCriterion(tt.line))
			testutil.AssertEqual(t, tm.CriteriaCount(), 1)
			c := tm.criteria[0]
			testutil.AssertEqual(t, c.TagName, tt.wantName)
			testutil.AssertEqual(t, c.Value, tt.wantVal)
			testutil.AssertEqual(t, c.Operator, tt.wantOp)
		})
	}
}

func TestTagMatcher_Load(t *testing.T) {
	tm := NewTagMatcher()
	err := tm.Load(strings.NewReader("# players\nWhite \"Fischer, Robert\"\n\nPlyCount >= 80\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, tm.CriteriaCount(), 2)
	testutil.AssertTrue(t, tm.Match(sampleTags), "file criteria")

	err = NewTagMatcher().Load(strings.NewReader("White \"x\"\n>= 3\n"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertContains(t, err.Error(), "line 2")
}

func TestSoundex(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Fischer", "F26000"},
		{"Fisher", "F26000"},
		{"Tal", "T40000"},
		{"Smyslov", "S52410"},
		{"o'Kelly", "O24000"},
		{"", ""},
		{"123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Soundex(tt.name), tt.want)
		})
	}

	testutil.AssertTrue(t, SoundexMatch("Spassky", "Spasski"), "spelling variants")
	testutil.AssertFalse(t, SoundexMatch("Karpov", "Kasparov"), "different names")
}
