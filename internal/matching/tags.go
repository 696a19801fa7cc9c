// Package matching selects games by their tag pairs.
package matching

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TagOperator represents comparison operators for tag matching.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // substring match
	OpRegex
	OpSoundex // player names that sound alike
)

// operators lists the criterion file spellings, two-character forms first.
var operators = []struct {
	text string
	op   TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// playerTag matches either the White or the Black tag.
const playerTag = "_Player"

// TagCriterion represents a single tag matching criterion.
type TagCriterion struct {
	TagName  string
	Value    string
	Operator TagOperator

	regex *regexp.Regexp
	key   string // lowercased value or soundex code
}

// TagMatcher accepts games whose tags meet every criterion.
type TagMatcher struct {
	criteria       []*TagCriterion
	useSoundex     bool
	substringMatch bool
}

// NewTagMatcher creates a matcher with no criteria, which accepts every game.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{}
}

// SetUseSoundex makes player criteria match names that sound alike.
func (tm *TagMatcher) SetUseSoundex(use bool) {
	tm.useSoundex = use
}

// SetSubstringMatch makes equality criteria match anywhere in the value.
func (tm *TagMatcher) SetSubstringMatch(use bool) {
	tm.substringMatch = use
}

// AddCriterion adds a tag matching criterion.
func (tm *TagMatcher) AddCriterion(tagName, value string, op TagOperator) error {
	if op == OpEqual && tm.substringMatch {
		op = OpContains
	}
	c := &TagCriterion{TagName: tagName, Value: value, Operator: op}

	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "tag pattern %q: %v", value, err)
		}
		c.regex = re
	case OpSoundex:
		c.key = Soundex(value)
	case OpContains:
		c.key = strings.ToLower(value)
	}

	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddTagCriterion adds an equality criterion on one of the predefined tags.
func (tm *TagMatcher) AddTagCriterion(tag chess.TagName, value string) error {
	return tm.AddCriterion(tag.String(), value, OpEqual)
}

// AddPlayerCriterion matches a name against both players.
func (tm *TagMatcher) AddPlayerCriterion(name string) error {
	op := OpContains
	if tm.useSoundex {
		op = OpSoundex
	}
	return tm.AddCriterion(playerTag, name, op)
}

// ParseCriterion parses a criterion line such as
//
//	Date >= "2020.01.01"
//	White ~ "^Carl"
//
// Blank lines and lines starting with '#' are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "tag criterion %q", line)
	}
	name := line[:end]
	rest := strings.TrimSpace(line[end:])

	op := OpEqual
	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			op = o.op
			rest = rest[len(o.text):]
			break
		}
	}

	value := strings.TrimSpace(rest)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return tm.AddCriterion(name, value, op)
}

// Load reads one criterion per line.
func (tm *TagMatcher) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := tm.ParseCriterion(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return sc.Err()
}

// Match reports whether tags meet every criterion.
func (tm *TagMatcher) Match(tags chess.Tags) bool {
	for _, c := range tm.criteria {
		if !c.match(tags) {
			return false
		}
	}
	return true
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}

func (c *TagCriterion) match(tags chess.Tags) bool {
	if c.TagName == playerTag {
		return c.matchValue(tags.Get(chess.WhiteTag)) || c.matchValue(tags.Get(chess.BlackTag))
	}

	value, ok := tags[c.TagName]
	if !ok {
		return c.Operator == OpNotEqual
	}
	return c.matchValue(value)
}

func (c *TagCriterion) matchValue(value string) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.key)
	case OpRegex:
		return c.regex != nil && c.regex.MatchString(value)
	case OpSoundex:
		return value != "" && Soundex(value) == c.key
	}

	cmp := compare(value, c.Value)
	switch c.Operator {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// compare orders two tag values as dates (YYYY.MM.DD), then numbers, then
// case-insensitive text.
func compare(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return da - db
	}

	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}

	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD, or returns 0. Unknown
// month or day fields ("??") count as the first.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	field := func(i, hi int) int {
		if i >= len(parts) {
			return 1
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 1 || v > hi {
			return 1
		}
		return v
	}
	return year*10000 + field(1, 12)*100 + field(2, 31)
}
