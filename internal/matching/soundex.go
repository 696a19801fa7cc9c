package matching

import (
	"strings"
	"unicode"
)

// soundexCodes maps 'A'..'Z' to a consonant group; '0' marks letters that
// are skipped. W sounds like V in most transliterated names, so it joins
// the B/F/P/V group.
const soundexCodes = "01230120022455012623011202"

// Soundex returns a six-character phonetic code for a player name.
func Soundex(name string) string {
	var letters []byte
	for _, r := range strings.ToUpper(name) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte{letters[0]}
	last := soundexCodes[letters[0]-'A']
	for _, c := range letters[1:] {
		if len(code) == 6 {
			break
		}
		d := soundexCodes[c-'A']
		if d == '0' {
			continue
		}
		if d != last {
			code = append(code, d)
		}
		last = d
	}
	for len(code) < 6 {
		code = append(code, '0')
	}
	return string(code)
}

// SoundexMatch reports whether two names share a soundex code.
func SoundexMatch(a, b string) bool {
	return Soundex(a) == Soundex(b)
}
