package timeutil

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"
)

// Words the Go layout engine treats as fields. Literal text containing any
// of them would be silently reinterpreted, so such patterns are rejected.
var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

// compilePattern translates a date-format pattern (yyyy-MM-dd HH:mm:ss style,
// or strftime when it contains '%') into a Go reference layout.
func compilePattern(pattern string) (string, error) {
	if pattern == "" {
		return "", newInvalidPattern(pattern, 0, "empty pattern")
	}
	if !utf8.ValidString(pattern) {
		return "", newInvalidPattern(pattern, 0, "pattern is not valid UTF-8")
	}
	if strings.ContainsRune(pattern, '%') {
		return compileStrftime(pattern)
	}

	runes := []rune(pattern)
	var layout joinedLayout
	prevField := ""

	for i := 0; i < len(runes); {
		r := runes[i]
		var chunk, lead string
		next := i + 1
		isField := false

		switch {
		case r == '\'':
			lit, end, err := readQuoted(pattern, runes, i)
			if err != nil {
				return "", err
			}
			if err := checkLiteral(pattern, i, prevField, lit); err != nil {
				return "", err
			}
			chunk, next = lit, end
		case isPatternLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			field, err := fieldLayout(pattern, i, r, j-i, layout.String())
			if err != nil {
				return "", err
			}
			chunk, next, isField = field, j, true
			if r == 'S' {
				soFar := layout.String()
				lead = soFar[len(soFar)-1:]
			}
		default:
			chunk = string(r)
			if err := checkLiteral(pattern, i, prevField, chunk); err != nil {
				return "", err
			}
		}

		if !layout.add(chunk, lead) {
			return "", newInvalidPattern(pattern, i, "fields merge into another layout token")
		}
		prevField = ""
		if isField {
			prevField = chunk
		}
		i = next
	}

	return layout.String(), nil
}

// joinReferenceTimes have distinct values in every field, so a chunk that the
// layout lexer reads differently once joined to its neighbours renders
// differently too.
var joinReferenceTimes = []time.Time{
	time.Date(2023, 3, 12, 21, 5, 7, 123456789, time.FixedZone("IST", 5*3600+30*60)),
	time.Date(1999, 11, 28, 8, 47, 59, 987654321, time.FixedZone("BRT", -3*3600)),
}

// joinedLayout accumulates layout chunks and checks that the whole layout
// still renders as the concatenation of its chunks.
type joinedLayout struct {
	layout strings.Builder
	want   [2]string
}

// add appends chunk. lead is the one-byte separator a fraction chunk only
// renders correctly after; it is already part of the layout.
func (l *joinedLayout) add(chunk, lead string) bool {
	l.layout.WriteString(chunk)
	ok := true
	for i, t := range joinReferenceTimes {
		l.want[i] += t.Format(lead + chunk)[len(lead):]
		if t.Format(l.layout.String()) != l.want[i] {
			ok = false
		}
	}
	return ok
}

func (l *joinedLayout) String() string {
	return l.layout.String()
}

func compileStrftime(pattern string) (string, error) {
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return "", newInvalidPattern(pattern, strings.IndexByte(pattern, '%'), "strftime: %v", err)
	}
	return layout, nil
}

// readQuoted consumes a quoted literal starting at runes[start] == '\''.
// A doubled quote stands for one literal quote, both inside and outside quotes.
func readQuoted(pattern string, runes []rune, start int) (string, int, error) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}

	var lit strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			lit.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			lit.WriteRune('\'')
			i++
			continue
		}
		return lit.String(), i + 1, nil
	}
	return "", 0, newInvalidPattern(pattern, start, "unterminated quote")
}

func checkLiteral(pattern string, pos int, prevField, lit string) error {
	for _, r := range lit {
		if r >= '0' && r <= '9' || r == '_' {
			return newInvalidPattern(pattern, pos, "literal %q cannot be represented", lit)
		}
	}
	for _, w := range layoutWords {
		if strings.Contains(lit, w) {
			return newInvalidPattern(pattern, pos, "literal %q cannot be represented", lit)
		}
	}
	if prevField == "Mon" && strings.HasPrefix(lit, "day") || prevField == "Jan" && strings.HasPrefix(lit, "uary") {
		return newInvalidPattern(pattern, pos, "literal %q merges with the preceding field", lit)
	}
	return nil
}

func isPatternLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// fieldLayout returns the Go layout for a run of n identical pattern letters.
// soFar is the layout emitted before the run.
func fieldLayout(pattern string, pos int, letter rune, n int, soFar string) (string, error) {
	switch letter {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch {
		case n == 1:
			return "1", nil
		case n == 2:
			return "01", nil
		case n == 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		if n == 1 {
			return "2", nil
		}
		return "02", nil
	case 'D':
		if n > 3 {
			break
		}
		return "002", nil
	case 'H', 'k':
		return "15", nil
	case 'h', 'K':
		if n == 1 {
			return "3", nil
		}
		return "03", nil
	case 'm':
		if n == 1 {
			return "4", nil
		}
		return "04", nil
	case 's':
		if n == 1 {
			return "5", nil
		}
		return "05", nil
	case 'S':
		if n > 9 {
			return "", newInvalidPattern(pattern, pos, "fraction wider than nanoseconds")
		}
		if !strings.HasSuffix(soFar, ".") && !strings.HasSuffix(soFar, ",") {
			return "", newInvalidPattern(pattern, pos, "fraction must follow '.' or ','")
		}
		return strings.Repeat("0", n), nil
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'a':
		return "PM", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		case 3:
			return "Z07:00", nil
		}
	}
	return "", newInvalidPattern(pattern, pos, "unsupported field %q", strings.Repeat(string(letter), n))
}
