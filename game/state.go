// Package game tracks a sequence of positions and the moves that produced
// them, and derives the game's outcome from that history.
package game

// State is the outcome derived from a Game's current position plus its
// history. Exactly one value applies at any point in a Game's life.
type State int

const (
	Active State = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawFiftyMove:
		return "DrawFiftyMove"
	case DrawRepetition:
		return "DrawRepetition"
	case DrawInsufficientMaterial:
		return "DrawInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether s ends the game: no further moves may be made.
func (s State) IsTerminal() bool {
	switch s {
	case Checkmate, Stalemate, DrawFiftyMove, DrawRepetition, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// deriveState computes the GameState for the current position of g,
// following the precedence spec §4.2 implies: a position with no legal
// moves is Checkmate or Stalemate outright, regardless of clocks or
// repetition; otherwise the draw conditions are checked against the
// accumulated history before falling back to Check/Active.
func (g *Game) deriveState() State {
	pos := g.Current()
	if len(pos.LegalMoves()) == 0 {
		if pos.IsCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if pos.HalfMove >= 100 {
		return DrawFiftyMove
	}
	if g.repetitionCount(pos.Hash) >= 3 {
		return DrawRepetition
	}
	if pos.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if pos.IsCheck() {
		return Check
	}
	return Active
}
