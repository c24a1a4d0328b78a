package board

import "strings"

// SAN renders m, played from p, in SAN-equivalent notation (spec §6):
// piece letter (omitted for pawns), disambiguation, 'x' for captures,
// destination, '=' promotion, '+'/'#' for check/checkmate, and 'O-O'/'O-O-O'
// for castling. Disambiguation logic follows the teacher's
// common/move.go:moveToSAN exactly: try file-only, then rank-only, then the
// full square.
func (p *Position) SAN(m Move) string {
	if m.Kind == CastleKingside {
		return p.withCheckSuffix(m, "O-O")
	}
	if m.Kind == CastleQueenside {
		return p.withCheckSuffix(m, "O-O-O")
	}

	mover := p.Board[m.From]
	var piece, from, capture, promo string

	if mover.Type() != Pawn {
		piece = mover.Type().String()
	}
	if m.IsCapture() {
		capture = "x"
		if mover.Type() == Pawn {
			from = m.From.String()[:1]
		}
	}
	if m.IsPromotion() {
		promo = "=" + m.Promo.String()
	}

	if mover.Type() != Pawn {
		ambiguous, uniqueFile, uniqueRank := disambiguate(p, m)
		if ambiguous {
			switch {
			case uniqueFile:
				from = m.From.String()[:1]
			case uniqueRank:
				from = m.From.String()[1:]
			default:
				from = m.From.String()
			}
		}
	}

	san := piece + from + capture + m.To.String() + promo
	return p.withCheckSuffix(m, san)
}

func (p *Position) withCheckSuffix(m Move, san string) string {
	child := p.applyPseudoLegal(m)
	if !child.IsCheck() {
		return san
	}
	if len(child.LegalMoves()) == 0 {
		return san + "#"
	}
	return san + "+"
}

// disambiguate reports whether any other legal move of the same piece type
// also targets m.To, and if so whether distinguishing by file or rank alone
// is enough.
func disambiguate(p *Position, m Move) (ambiguous, uniqueFile, uniqueRank bool) {
	mover := p.Board[m.From]
	uniqueFile, uniqueRank = true, true
	for _, other := range p.LegalMoves() {
		if other.From == m.From || other.To != m.To {
			continue
		}
		if p.Board[other.From].Type() != mover.Type() {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			uniqueFile = false
		}
		if other.From.Rank() == m.From.Rank() {
			uniqueRank = false
		}
	}
	return
}

// ParseSAN finds the legal move from p whose SAN rendering matches s,
// ignoring a trailing check/mate/annotation suffix.
func (p *Position) ParseSAN(s string) (Move, error) {
	trimmed := strings.TrimRight(s, "+#?!")
	for _, m := range p.LegalMoves() {
		if p.SAN(m) == s || strings.TrimRight(p.SAN(m), "+#") == trimmed {
			return m, nil
		}
	}
	return Move{}, ErrIllegalMove
}
