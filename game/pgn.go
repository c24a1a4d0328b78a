package game

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/talonchess/talon/board"
)

// sevenTagRoster orders the well-known PGN header tags first; any other
// tags supplied in ToPGN are appended afterward in map iteration order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// ToPGN renders g as a PGN-equivalent transcript: header tag pairs followed
// by SAN movetext with move numbers and a trailing result token (spec
// §4.4/§6). The result token is derived from g's current GameState unless
// tags["Result"] is already set.
func ToPGN(g *Game, tags map[string]string) string {
	var b strings.Builder

	result := tags["Result"]
	if result == "" {
		result = resultToken(g.State(), g.Current().SideToMove)
	}
	written := map[string]bool{}
	for _, key := range sevenTagRoster {
		val := tags[key]
		if key == "Result" {
			val = result
		}
		if val == "" && key != "Result" {
			continue
		}
		fmt.Fprintf(&b, "[%s %q]\n", key, val)
		written[key] = true
	}
	for key, val := range tags {
		if written[key] {
			continue
		}
		fmt.Fprintf(&b, "[%s %q]\n", key, val)
	}
	b.WriteString("\n")

	positions := g.Positions()
	moves := g.Moves()
	for i, m := range moves {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. ", i/2+1)
		}
		b.WriteString(positions[i].SAN(m))
		b.WriteString(" ")
	}
	b.WriteString(result)
	b.WriteString("\n")
	return b.String()
}

// resultToken derives the {1-0, 0-1, 1/2-1/2, *} token from a terminal
// GameState; an ongoing game yields "*" (spec §6).
func resultToken(s State, sideToMove board.Color) string {
	switch s {
	case Checkmate:
		if sideToMove == board.White {
			return "0-1"
		}
		return "1-0"
	case Stalemate, DrawFiftyMove, DrawRepetition, DrawInsufficientMaterial:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// FromPGN parses a PGN-equivalent transcript into a Game, replaying each
// movetext token as SAN against the position it was played from. Header
// tags are consumed for an optional FEN starting position but otherwise
// discarded; only the reconstructed move sequence matters to the returned
// Game.
func FromPGN(pgn string) (*Game, error) {
	var startFEN string
	var movetext strings.Builder

	scanner := bufio.NewScanner(strings.NewReader(pgn))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if strings.HasPrefix(line, "[FEN ") {
				startFEN = extractTagValue(line)
			}
			continue
		}
		movetext.WriteString(line)
		movetext.WriteString(" ")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", board.ErrParse, err)
	}

	var g *Game
	var err error
	if startFEN != "" {
		g, err = NewGameFromDescriptor(startFEN)
	} else {
		g = NewGame()
	}
	if err != nil {
		return nil, err
	}

	for _, tok := range strings.Fields(movetext.String()) {
		if !looksLikeMove(tok) {
			continue
		}
		m, err := g.Current().ParseSAN(tok)
		if err != nil {
			return nil, fmt.Errorf("game: parse pgn move %q: %w", tok, err)
		}
		if err := g.MakeMove(m); err != nil {
			return nil, fmt.Errorf("game: replay pgn move %q: %w", tok, err)
		}
	}
	return g, nil
}

func extractTagValue(line string) string {
	start := strings.IndexByte(line, '"')
	end := strings.LastIndexByte(line, '"')
	if start < 0 || end <= start {
		return ""
	}
	return line[start+1 : end]
}

// looksLikeMove filters out move-number tokens ("12.") and result tokens,
// leaving only tokens that could be SAN, mirroring the teacher's
// canBeMove/LoadPgn filter in shell/pgn.go.
func looksLikeMove(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return false
	}
	trimmed := strings.TrimRight(tok, ".")
	if _, err := strconv.Atoi(trimmed); err == nil {
		return false
	}
	for _, ch := range tok {
		if !strings.ContainsRune("12345678abcdefghNBRQKOxnbrq=+#!?-", ch) {
			return false
		}
	}
	return true
}
