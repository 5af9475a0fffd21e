package parser

import (
	"strings"

	"github.com/julianstephens/trainlog/internal/models"
)

// Multiplier is the glyph separating sets from reps in a plan line, e.g.
// "Push-ups: 3×12".
const Multiplier = '×'

// Parser recovers a structured exercise record from a free-form plan line.
// Implementations must be total: any input string yields a record, never an
// error. Plan lines come from users and from the plan generator, so a strict
// failure mode would let one malformed line block a whole import.
type Parser interface {
	Parse(line string) models.ExerciseRecord
}

// TokenParser implements the canonical "<Name>: <Sets>×<Reps>" grammar.
//
// The line is split on the first ":". The left side, trimmed, is the name;
// without a ":" the whole trimmed line is the name. The right side is
// scanned for the first integer immediately before the multiplier glyph
// (sets) and the first integer immediately after it (reps). A missing group
// is the empty string, not a failure. Weight and notes are never derived
// here.
type TokenParser struct{}

func New() *TokenParser {
	return &TokenParser{}
}

func (p *TokenParser) Parse(line string) models.ExerciseRecord {
	name, rest, found := strings.Cut(line, ":")
	rec := models.ExerciseRecord{Name: strings.TrimSpace(name)}
	if !found {
		return rec
	}
	rec.Sets = scanSets(rest)
	rec.Reps = scanReps(rest)
	return rec
}

// scanSets returns the digits immediately preceding the first multiplier
// glyph that has any, or "".
func scanSets(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if r != Multiplier {
			continue
		}
		j := i
		for j > 0 && isDigit(rs[j-1]) {
			j--
		}
		if j < i {
			return string(rs[j:i])
		}
	}
	return ""
}

// scanReps returns the digits immediately following the first multiplier
// glyph that has any, or "".
func scanReps(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if r != Multiplier {
			continue
		}
		k := i + 1
		for k < len(rs) && isDigit(rs[k]) {
			k++
		}
		if k > i+1 {
			return string(rs[i+1 : k])
		}
	}
	return ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
