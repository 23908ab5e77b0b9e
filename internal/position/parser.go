// Package position parses the free-text position column of squad exports.
//
// Grammar: tokens separated by "," or "/", each a bare code ("D") optionally
// followed by side letters in parentheses ("D (RL)"). A bare code borrows the
// sides of the next token that has them: "D, WB (R)" is "D (R)", "WB (R)".
package position

import "strings"

const (
	Goalkeeper          = "GK"
	DefensiveMidfield   = "DM"
	CentralDefensiveMid = "DM (C)"
)

// Parser implements contracts.PositionParser
type Parser struct{}

// Parse turns raw position text into canonical labels
func (Parser) Parse(raw string) []string {
	return Parse(raw)
}

// Parse turns raw position text into canonical labels, in token order then side order
// Duplicates are kept; callers dedupe when they need to
func Parse(raw string) []string {
	tokens := strings.Split(strings.ReplaceAll(raw, ",", "/"), "/")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	// GK overrides everything, then any DM variant collapses to the centre
	for _, tok := range tokens {
		if tok == Goalkeeper {
			return []string{Goalkeeper}
		}
	}
	for _, tok := range tokens {
		if strings.Contains(tok, DefensiveMidfield) {
			return []string{CentralDefensiveMid}
		}
	}

	var labels []string
	for i, tok := range tokens {
		code := bareCode(tok)
		if code == "" {
			continue
		}

		var sides []rune
		if strings.Contains(tok, "(") {
			sides = sideLetters(tok)
		} else {
			sides = borrowSides(tokens, i)
		}

		for _, side := range sides {
			labels = append(labels, code+" ("+string(side)+")")
		}
	}
	return labels
}

// borrowSides returns the sides of the first later token that has parentheses
func borrowSides(tokens []string, start int) []rune {
	for _, tok := range tokens[start+1:] {
		if strings.Contains(tok, "(") {
			return sideLetters(tok)
		}
	}
	return nil
}

func sideLetters(tok string) []rune {
	open := strings.Index(tok, "(")
	if open < 0 {
		return nil
	}
	inner := tok[open+1:]
	if end := strings.Index(inner, ")"); end >= 0 {
		inner = inner[:end]
	}

	var sides []rune
	for _, r := range inner {
		if r == ' ' || r == '\t' {
			continue
		}
		sides = append(sides, r)
	}
	return sides
}

func bareCode(tok string) string {
	if i := strings.Index(tok, "("); i >= 0 {
		tok = tok[:i]
	}
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
