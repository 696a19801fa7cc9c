package notation

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Script is one game read from a move file: optional tag pairs followed by
// lines of coordinate moves. Games are separated by blank lines.
//
//	[White "Alice"]
//	[Black "Bob"]
//	1. e2e4 e7e5 2. g1f3 b8c6
//	3. f1b5 *
type Script struct {
	Number int // 1-based game number in the input
	Line   int // input line the game starts on
	Tags   chess.Tags
	Moves  []engine.Move
	Result string // result token given in the input, if any

	// Err is set when the game text could not be parsed. The moves before
	// the bad token are kept.
	Err error
}

// ScriptReader reads scripts one at a time.
type ScriptReader struct {
	sc      *bufio.Scanner
	file    string
	lineNum int
	gameNum int
	err     error
}

// NewScriptReader reads scripts from r. The file name is only used in errors.
func NewScriptReader(r io.Reader, file string) *ScriptReader {
	return &ScriptReader{sc: bufio.NewScanner(r), file: file}
}

// Next returns the next game. The boolean is false at the end of input or on
// a read error; see Err.
func (sr *ScriptReader) Next() (Script, bool) {
	var s Script
	started := false

	for sr.sc.Scan() {
		sr.lineNum++
		line := strings.TrimSpace(sr.sc.Text())

		if line == "" {
			if started {
				return s, true
			}
			continue
		}
		if line[0] == '%' || line[0] == ';' {
			continue
		}

		if !started {
			started = true
			sr.gameNum++
			s = Script{Number: sr.gameNum, Line: sr.lineNum, Tags: chess.Tags{}}
		}
		if s.Err != nil {
			continue
		}

		if line[0] == '[' {
			name, value, err := ParseTag(line)
			if err != nil {
				s.Err = &errors.GameError{Err: err, GameNum: s.Number, File: sr.file}
				continue
			}
			s.Tags[name] = value
			continue
		}
		sr.parseMoves(&s, line)
	}

	sr.err = sr.sc.Err()
	return s, started
}

func (sr *ScriptReader) parseMoves(s *Script, line string) {
	for _, tok := range strings.Fields(line) {
		if isMoveNumber(tok) {
			continue
		}
		if IsResult(tok) {
			s.Result = tok
			continue
		}
		m, err := ParseMove(tok)
		if err != nil {
			s.Err = &errors.GameError{
				Err:      err,
				GameNum:  s.Number,
				PlyNum:   len(s.Moves) + 1,
				MoveText: tok,
				File:     sr.file,
			}
			return
		}
		s.Moves = append(s.Moves, m)
	}
}

// Err returns the first read error, if any.
func (sr *ScriptReader) Err() error {
	return sr.err
}

// ReadScripts reads every game from r.
func ReadScripts(r io.Reader, file string) ([]Script, error) {
	sr := NewScriptReader(r, file)
	var scripts []Script
	for {
		s, ok := sr.Next()
		if !ok {
			break
		}
		scripts = append(scripts, s)
	}
	return scripts, sr.Err()
}

// ParseTag parses a tag pair line of the form [Name "value"]. Backslash
// escapes a quote or backslash inside the value.
func ParseTag(line string) (name, value string, err error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", "", errors.Wrapf(errors.ErrInvalidNotation, "tag %s", line)
	}
	body := strings.TrimSpace(line[1 : len(line)-1])

	end := strings.IndexAny(body, " \t")
	if end <= 0 {
		return "", "", errors.Wrapf(errors.ErrInvalidNotation, "tag %s", line)
	}
	name = body[:end]
	for _, c := range name {
		if !(c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')) {
			return "", "", errors.Wrapf(errors.ErrInvalidNotation, "tag name %q", name)
		}
	}

	rest := strings.TrimSpace(body[end:])
	if len(rest) < 2 || rest[0] != '"' {
		return "", "", errors.Wrapf(errors.ErrInvalidNotation, "tag %s", line)
	}

	var sb strings.Builder
	escaped := false
	for i := 1; i < len(rest); i++ {
		ch := rest[i]
		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			if strings.TrimSpace(rest[i+1:]) != "" {
				return "", "", errors.Wrapf(errors.ErrInvalidNotation, "tag %s", line)
			}
			return name, sb.String(), nil
		default:
			sb.WriteByte(ch)
		}
	}
	return "", "", errors.Wrapf(errors.ErrInvalidNotation, "unterminated tag %s", line)
}

// FormatTag returns the tag pair line for name and value.
func FormatTag(name, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return "[" + name + ` "` + value + `"]`
}
