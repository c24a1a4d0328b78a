package board

// generateLegalMoves produces every legal move from p: pseudo-legal moves
// are generated per piece class, then filtered by trial-applying each one
// and asking whether the mover's own king is left attacked (spec §4.2).
// Castling is the one exception — it is fully validated at generation time
// because it additionally forbids moving *through* attacked squares, a
// rule the post-hoc "is my king attacked after the move" check can't see.
func generateLegalMoves(p *Position) []Move {
	pseudo := generatePseudoLegal(p)
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove
	for _, m := range pseudo {
		child := p.applyPseudoLegal(m)
		if !child.isAttacked(child.KingSquare(us), us.Opposite()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatePseudoLegal produces every pseudo-legal move from p: it respects
// piece movement rules and castling's through-check restriction, but may
// leave the mover's own king in check (discovered or otherwise) — that is
// filtered out by generateLegalMoves.
func generatePseudoLegal(p *Position) []Move {
	var moves []Move
	us := p.SideToMove
	for sq := Square(0); sq < 64; sq++ {
		pc := p.Board[sq]
		if pc == None || pc.Color() != us {
			continue
		}
		switch pc.Type() {
		case Pawn:
			generatePawnMoves(p, sq, &moves)
		case Knight:
			generateStepMoves(p, sq, knightAttacks[sq], &moves)
		case Bishop:
			generateSlideMoves(p, sq, bishopDirs[:], &moves)
		case Rook:
			generateSlideMoves(p, sq, rookDirs[:], &moves)
		case Queen:
			generateSlideMoves(p, sq, bishopDirs[:], &moves)
			generateSlideMoves(p, sq, rookDirs[:], &moves)
		case King:
			generateStepMoves(p, sq, kingAttacks[sq], &moves)
			generateCastleMoves(p, sq, &moves)
		}
	}
	return moves
}

func generateStepMoves(p *Position, from Square, targets []Square, moves *[]Move) {
	us := p.Board[from].Color()
	for _, to := range targets {
		target := p.Board[to]
		if target == None {
			*moves = append(*moves, Move{From: from, To: to, Kind: Quiet})
		} else if target.Color() != us {
			*moves = append(*moves, Move{From: from, To: to, Kind: Capture})
		}
	}
}

func generateSlideMoves(p *Position, from Square, dirs []int, moves *[]Move) {
	us := p.Board[from].Color()
	for _, dir := range dirs {
		for _, to := range rays[dir][from] {
			target := p.Board[to]
			if target == None {
				*moves = append(*moves, Move{From: from, To: to, Kind: Quiet})
				continue
			}
			if target.Color() != us {
				*moves = append(*moves, Move{From: from, To: to, Kind: Capture})
			}
			break
		}
	}
}

func generatePawnMoves(p *Position, from Square, moves *[]Move) {
	us := p.Board[from].Color()
	forward := 1
	startRank := Rank2
	lastRank := Rank8
	if us == Black {
		forward = -1
		startRank = Rank7
		lastRank = Rank1
	}

	oneStep := MakeSquare(from.File(), from.Rank()+forward)
	if oneStep.Valid() && p.Board[oneStep] == None {
		addPawnAdvance(from, oneStep, lastRank, moves)
		if from.Rank() == startRank {
			twoStep := MakeSquare(from.File(), from.Rank()+2*forward)
			if p.Board[twoStep] == None {
				*moves = append(*moves, Move{From: from, To: twoStep, Kind: DoublePawnPush})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		nf := from.File() + df
		if nf < 0 || nf > 7 {
			continue
		}
		to := MakeSquare(nf, from.Rank()+forward)
		if !to.Valid() {
			continue
		}
		target := p.Board[to]
		if target != None && target.Color() != us {
			addPawnCapture(from, to, lastRank, moves)
		} else if to == p.EnPassant {
			*moves = append(*moves, Move{From: from, To: to, Kind: EnPassant})
		}
	}
}

func addPawnAdvance(from, to Square, lastRank int, moves *[]Move) {
	if to.Rank() == lastRank {
		for _, pt := range promotionTypes {
			*moves = append(*moves, Move{From: from, To: to, Kind: Promotion, Promo: pt})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Kind: Quiet})
}

func addPawnCapture(from, to Square, lastRank int, moves *[]Move) {
	if to.Rank() == lastRank {
		for _, pt := range promotionTypes {
			*moves = append(*moves, Move{From: from, To: to, Kind: CapturePromotion, Promo: pt})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Kind: Capture})
}

func generateCastleMoves(p *Position, kingSq Square, moves *[]Move) {
	us := p.SideToMove
	opp := us.Opposite()

	type side struct {
		right       CastlingRights
		rookSq      Square
		passThrough Square
		dest        Square
		betweenOnly []Square // squares that must be empty but need not be unattacked (the b-file square on queenside)
	}

	var sides [2]side
	if us == White {
		sides[0] = side{WhiteKingside, SquareH1, SquareF1, SquareG1, nil}
		sides[1] = side{WhiteQueenside, SquareA1, SquareD1, SquareC1, []Square{SquareB1}}
	} else {
		sides[0] = side{BlackKingside, SquareH8, SquareF8, SquareG8, nil}
		sides[1] = side{BlackQueenside, SquareA8, SquareD8, SquareC8, []Square{SquareB8}}
	}

	for i, s := range sides {
		if p.Castling&s.right == 0 {
			continue
		}
		if p.Board[s.passThrough] != None || p.Board[s.dest] != None {
			continue
		}
		blocked := false
		for _, extra := range s.betweenOnly {
			if p.Board[extra] != None {
				blocked = true
			}
		}
		if blocked {
			continue
		}
		if p.isAttacked(kingSq, opp) || p.isAttacked(s.passThrough, opp) || p.isAttacked(s.dest, opp) {
			continue
		}
		kind := CastleKingside
		if i == 1 {
			kind = CastleQueenside
		}
		*moves = append(*moves, Move{From: kingSq, To: s.dest, Kind: kind})
	}
}
