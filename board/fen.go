package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FromFEN parses the six-field FEN-equivalent descriptor (spec §6) into a
// Position, validating its invariants. A malformed field or an invariant
// violation fails with ErrInvalidPosition/ErrParse.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 fields, got %d", ErrParse, len(fields))
	}

	p := &Position{EnPassant: SquareNone, FullMove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: piece placement needs 8 ranks, got %d", ErrParse, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, err := pieceFromFENChar(byte(ch))
			if err != nil {
				return nil, err
			}
			if file > 7 {
				return nil, fmt.Errorf("%w: rank %q overflows the board", ErrParse, rankStr)
			}
			p.Board[MakeSquare(file, rank)] = pc
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %q does not sum to 8 files", ErrParse, rankStr)
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrParse, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.Castling |= WhiteKingside
			case 'Q':
				p.Castling |= WhiteQueenside
			case 'k':
				p.Castling |= BlackKingside
			case 'q':
				p.Castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("%w: bad castling field %q", ErrParse, fields[2])
			}
		}
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad en-passant field %q", ErrParse, fields[3])
	}
	p.EnPassant = ep

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil || hm < 0 {
			return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrParse, fields[4])
		}
		p.HalfMove = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil || fm < 1 {
			return nil, fmt.Errorf("%w: bad fullmove number %q", ErrParse, fields[5])
		}
		p.FullMove = fm
	} else {
		p.FullMove = 1
	}

	p.Hash = computeHash(p)
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func pieceFromFENChar(ch byte) (Piece, error) {
	idx := strings.IndexByte("PNBRQKpnbrqk", ch)
	if idx < 0 {
		return None, fmt.Errorf("%w: bad piece letter %q", ErrParse, string(ch))
	}
	if idx < 6 {
		return MakePiece(PieceType(idx+1), White), nil
	}
	return MakePiece(PieceType(idx-6+1), Black), nil
}

// ToFEN renders p as a FEN-equivalent descriptor. FromFEN(p.ToFEN()) == p
// for every reachable Position, including its Hash.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.Board[MakeSquare(file, rank)]
			if pc == None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())

	sb.WriteByte(' ')
	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.Castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.Castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.Castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMove))

	return sb.String()
}

func (p *Position) String() string {
	return p.ToFEN()
}
