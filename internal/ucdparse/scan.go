package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner is a line-level scanner for emoji data files.
//
// Comment lines are consumed silently, except for structural comments
// ("# group: …", "# subgroup: …") and header comments ("# Version: …") which
// are remembered and attached to subsequent tokens.
type Scanner struct {
	Token    *Token // last token produced by scanner
	lines    *bufio.Scanner
	lineno   int
	group    string
	subgroup string
	headers  map[string]string
	inBody   bool
	err      error
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{
		lines:   bufio.NewScanner(inputReader),
		headers: make(map[string]string),
	}
	return sc, nil
}

// Parse iterates over each data line of the file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.Err()
}

// Next is called to receive the next data token. It returns false at the end
// of input or on the first malformed data line; clients should check Err()
// afterwards.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	for sc.lines.Scan() {
		sc.lineno++
		line := strings.TrimSpace(sc.lines.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			sc.scanComment(line[1:])
			continue
		}
		token, err := sc.scanItem(line)
		if err != nil {
			sc.err = err
			sc.Token = nil
			return false
		}
		sc.inBody = true
		sc.Token = token
		return true
	}
	sc.err = sc.lines.Err()
	sc.Token = nil
	return false
}

// Err returns the first error encountered during scanning, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

func (sc *Scanner) scanComment(comment string) {
	key, value, ok := cutKey(comment)
	if !ok {
		return
	}
	switch key {
	case "group":
		sc.group, sc.subgroup = value, ""
	case "subgroup":
		sc.subgroup = value
	default:
		if !sc.inBody {
			sc.headers[key] = value
		}
	}
}

// cutKey splits a comment of the form " key: value".
func cutKey(comment string) (key, value string, ok bool) {
	comment = strings.TrimSpace(comment)
	i := strings.IndexByte(comment, ':')
	if i <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(comment[:i]))
	if strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(comment[i+1:]), true
}

func (sc *Scanner) scanItem(line string) (*Token, error) {
	token := &Token{
		LineNo:   sc.lineno,
		Group:    sc.group,
		Subgroup: sc.subgroup,
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if err := token.scanCodePoints(fields[0]); err != nil {
		return nil, fmt.Errorf("line %d: %w", sc.lineno, err)
	}
	token.Fields = fields[1:]
	return token, nil
}

func (token *Token) scanCodePoints(field string) error {
	if from, to, ok := strings.Cut(field, ".."); ok {
		l, err := hexRune(from)
		if err != nil {
			return err
		}
		r, err := hexRune(to)
		if err != nil {
			return err
		}
		if r < l {
			return fmt.Errorf("invalid code-point range %s", field)
		}
		token.CodePoints = []rune{l, r}
		token.IsRange = true
		return nil
	}
	hexwords := strings.Fields(field)
	if len(hexwords) == 0 {
		return errors.New("data item without code-points")
	}
	token.CodePoints = make([]rune, len(hexwords))
	for i, hex := range hexwords {
		r, err := hexRune(hex)
		if err != nil {
			return err
		}
		token.CodePoints[i] = r
	}
	return nil
}

func hexRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("code-point out of range: %s", hex)
	}
	return rune(n), nil
}
