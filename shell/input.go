package shell

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Input splits a text stream into whitespace-delimited tokens and whole lines.
// Tokens and lines share one cursor: after Token, Line returns whatever is
// left on the same line.
type Input struct {
	r *bufio.Reader
}

// NewInput wraps r for token and line reads.
func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// Token skips leading whitespace, newlines included, and returns the next run
// of non-whitespace characters. The delimiter after the token is left unread.
// It returns io.EOF when the stream ends before any token starts.
func (in *Input) Token() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			if err := in.r.UnreadRune(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// Line returns the rest of the current line without its terminator.
// Any other whitespace is preserved as entered.
func (in *Input) Line() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Int reads one token and parses it as a base-10 integer in the 32-bit range.
// A token that is not such an integer is still consumed and reported with ok=false.
func (in *Input) Int() (value int64, ok bool, err error) {
	tok, err := in.Token()
	if err != nil {
		return 0, false, err
	}
	value, err = strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false, nil
	}
	return value, true, nil
}
