// Package pgn extracts the two participants of every game from a PGN
// (Portable Game Notation) stream.
//
// Only the seven-tag-roster entries White and Black are read; moves,
// comments and all other tags are ignored. A game's header is the run of
// consecutive tag-pair lines ("[Name "value"]"); a header that lacks either
// White or Black is counted as skipped.
package pgn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

// ErrLineTooLong is returned when an input line exceeds MaxLineBytes.
var ErrLineTooLong = errors.New("pgn: line too long")

var (
	whiteTag = regexp.MustCompile(`^\s*\[White\s+"(.*)"\s*\]`)
	blackTag = regexp.MustCompile(`^\s*\[Black\s+"(.*)"\s*\]`)
	eventTag = regexp.MustCompile(`^\s*\[Event\s`)

	unescape = strings.NewReplacer(`\\`, `\`, `\"`, `"`)
)

// Game is one relation record: two players who met over the board.
type Game struct {
	White string
	Black string
	Line  int // 1-based line of the header's first tag
}

// Reader reads games from a PGN stream.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	skipped int

	// A tag line that opened the next header while the current one was
	// being closed; it is read again by the following call to Next.
	held    string
	hasHeld bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	return &Reader{sc: sc}
}

// scan advances to the next line, returning the held line first.
func (r *Reader) scan() (string, bool) {
	if r.hasHeld {
		r.hasHeld = false
		return r.held, true
	}
	if !r.sc.Scan() {
		return "", false
	}
	r.line++

	return r.sc.Text(), true
}

// Next returns the next complete game, or io.EOF when the stream ends.
//
// Headers usually end at the first non-tag line. A header also ends when a
// tag that can only belong to the next game arrives: a second White or
// Black, or an Event after either player was seen. That line then opens the
// next header.
func (r *Reader) Next() (Game, error) {
	var (
		g        Game
		inHeader bool
	)
	for {
		text, ok := r.scan()
		if !ok {
			break
		}
		if !isTagLine(text) {
			if inHeader {
				if g.complete() {
					return g, nil
				}
				r.skipped++
				g, inHeader = Game{}, false
			}
			continue
		}

		white := whiteTag.FindStringSubmatch(text)
		black := blackTag.FindStringSubmatch(text)
		if inHeader && startsNextGame(g, text, white != nil, black != nil) {
			if g.complete() {
				r.held, r.hasHeld = text, true
				return g, nil
			}
			r.skipped++
			g, inHeader = Game{}, false
		}
		if !inHeader {
			inHeader = true
			g.Line = r.line
		}
		switch {
		case white != nil:
			g.White = tagValue(white[1])
		case black != nil:
			g.Black = tagValue(black[1])
		}
	}
	if err := r.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Game{}, fmt.Errorf("%w: after line %d", ErrLineTooLong, r.line)
		}
		return Game{}, fmt.Errorf("pgn: read after line %d: %w", r.line, err)
	}
	// Header that runs to end of input.
	if inHeader {
		if g.complete() {
			return g, nil
		}
		r.skipped++
	}

	return Game{}, io.EOF
}

func (g Game) complete() bool { return g.White != "" && g.Black != "" }

// startsNextGame reports whether a tag line cannot belong to the header
// collected so far in g.
func startsNextGame(g Game, text string, isWhite, isBlack bool) bool {
	switch {
	case isWhite:
		return g.White != ""
	case isBlack:
		return g.Black != ""
	default:
		return (g.White != "" || g.Black != "") && eventTag.MatchString(text)
	}
}

// tagValue undoes PGN string escapes and trims surrounding space.
func tagValue(raw string) string {
	return strings.TrimSpace(unescape.Replace(raw))
}

// Games returns the remaining games as a sequence. A read error is yielded
// once and ends the sequence; io.EOF is not yielded.
func (r *Reader) Games() iter.Seq2[Game, error] {
	return func(yield func(Game, error) bool) {
		for {
			g, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(g, err) || err != nil {
				return
			}
		}
	}
}

// Skipped returns the number of headers seen so far without both players.
func (r *Reader) Skipped() int { return r.skipped }

// ReadAll collects every game in r.
func ReadAll(r io.Reader) ([]Game, error) {
	var out []Game
	for g, err := range NewReader(r).Games() {
		if err != nil {
			return out, err
		}
		out = append(out, g)
	}

	return out, nil
}

func isTagLine(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "[")
}
