package board

// promotionKinds lists the promotion targets in move-ordering-friendly order
// (Section 4.3: underpromotion exists but queen is almost always correct).
var promotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// genState is the per-call scratch state for legal move generation: the
// opponent's checkers against our king, the set of our pinned pieces (mapped
// to the ray direction, from the king, along which they're pinned) and,
// when in single check, the set of squares that capture or block the
// checker (Section 4.3).
type genState struct {
	p        *Position
	us, them Color
	ksq      Square

	checkers []Square
	pinned   map[Square]int
	blockSet map[Square]bool
}

func newGenState(p *Position) *genState {
	g := &genState{
		p:        p,
		us:       p.turn,
		them:     p.turn.Opponent(),
		ksq:      p.king[p.turn],
		pinned:   map[Square]int{},
		blockSet: map[Square]bool{},
	}
	g.findCheckersAndPins()
	return g
}

// findCheckersAndPins does the single combined pass described by Section
// 4.3: walk all eight ray directions from the king (covering sliders), plus
// the knight and pawn attack deltas, classifying each direction as either a
// direct checker, a pin, or a dead end.
func (g *genState) findCheckersAndPins() {
	p := g.p
	ksq := g.ksq
	them := g.them

	for _, d := range knightDeltas {
		if sq := ksq + Square(d); sq.IsValid() && p.board[sq] == NewPiece(them, Knight) {
			g.checkers = append(g.checkers, sq)
			g.blockSet[sq] = true
		}
	}

	var pawnDeltas [2]int
	if g.us == White {
		pawnDeltas = [2]int{deltaNE, deltaNW}
	} else {
		pawnDeltas = [2]int{deltaSE, deltaSW}
	}
	for _, d := range pawnDeltas {
		if sq := ksq + Square(d); sq.IsValid() && p.board[sq] == NewPiece(them, Pawn) {
			g.checkers = append(g.checkers, sq)
			g.blockSet[sq] = true
		}
	}

	for _, d := range queenDirs {
		var betweenKingAndFirst []Square
		sq := ksq + Square(d)
		for sq.IsValid() && p.board[sq].IsEmpty() {
			betweenKingAndFirst = append(betweenKingAndFirst, sq)
			sq += Square(d)
		}
		if !sq.IsValid() {
			continue
		}

		first := p.board[sq]
		firstSq := sq
		if first.Color() == g.us {
			sq += Square(d)
			for sq.IsValid() && p.board[sq].IsEmpty() {
				sq += Square(d)
			}
			if sq.IsValid() {
				second := p.board[sq]
				if second.Color() == g.them && isSliderDirection(d, second.Kind()) {
					g.pinned[firstSq] = d
				}
			}
			continue
		}

		if isSliderDirection(d, first.Kind()) {
			g.checkers = append(g.checkers, firstSq)
			g.blockSet[firstSq] = true
			for _, b := range betweenKingAndFirst {
				g.blockSet[b] = true
			}
		}
	}
}

func isSliderDirection(d int, k Kind) bool {
	switch k {
	case Queen:
		return true
	case Rook:
		return d == deltaN || d == deltaS || d == deltaE || d == deltaW
	case Bishop:
		return d == deltaNE || d == deltaNW || d == deltaSE || d == deltaSW
	default:
		return false
	}
}

// lineDir returns the normalized ray direction from a to b if they lie on a
// common rank, file or diagonal, or 0 if they don't.
func lineDir(a, b Square) int {
	df := b.File() - a.File()
	dr := b.Rank() - a.Rank()
	switch {
	case df == 0 && dr == 0:
		return 0
	case df == 0:
		if dr > 0 {
			return deltaN
		}
		return deltaS
	case dr == 0:
		if df > 0 {
			return deltaE
		}
		return deltaW
	case df == dr:
		if df > 0 {
			return deltaNE
		}
		return deltaSW
	case df == -dr:
		if df > 0 {
			return deltaSE
		}
		return deltaNW
	default:
		return 0
	}
}

// destinationAllowed applies the single-check block-set restriction; it is
// a no-op (always true) outside of single check, and kingMoves never calls
// it (the king escapes by moving, not by landing in the block set).
func (g *genState) destinationAllowed(to Square) bool {
	if len(g.checkers) == 0 {
		return true
	}
	return g.blockSet[to]
}

func (g *genState) pieceSquares(k Kind) []Square {
	var squares []Square
	target := NewPiece(g.us, k)
	for sq := Square(0); sq < 128; sq++ {
		if sq.IsValid() && g.p.board[sq] == target {
			squares = append(squares, sq)
		}
	}
	return squares
}

// LegalMoves generates every legal move in the position (Section 4.3).
// Double check restricts the list to king moves; single check additionally
// restricts every other piece to the block set. Pinned pieces are filtered
// to their pin line. King moves and en passant are verified by make/unmake
// rather than a static attack test, since a static ray test alone cannot
// detect a king sliding away along the checking ray, nor a rank-discovered
// check exposed by an en passant double-capture. Castling is checked
// statically: the king may not be in check or pass through or land on an
// attacked square.
func LegalMoves(p *Position) []Move {
	g := newGenState(p)
	moves := make([]Move, 0, 48)

	g.kingMoves(&moves)
	g.castles(&moves)

	if len(g.checkers) >= 2 {
		return moves
	}

	g.pawnMoves(&moves)
	g.knightMoves(&moves)
	g.sliderMoves(Bishop, g.p.at.BishopAttacks, &moves)
	g.sliderMoves(Rook, g.p.at.RookAttacks, &moves)
	g.sliderMoves(Queen, g.p.at.QueenAttacks, &moves)

	return moves
}

// CapturesAndPromotions returns only the captures, en passant captures and
// promotions in the position, for quiescence search (Section 4.6).
func CapturesAndPromotions(p *Position) []Move {
	all := LegalMoves(p)
	out := all[:0]
	for _, m := range all {
		if m.Type.IsCapture() || m.Type.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

func (g *genState) kingMoves(out *[]Move) {
	p := g.p
	us := g.us
	ksq := g.ksq

	for _, d := range kingDeltas {
		to := ksq + Square(d)
		if !to.IsValid() {
			continue
		}
		target := p.board[to]
		if !target.IsEmpty() && target.Color() == us {
			continue
		}

		var mv Move
		if target.IsEmpty() {
			mv = Move{Type: Quiet, From: ksq, To: to, Piece: King}
		} else {
			mv = Move{Type: Capture, From: ksq, To: to, Piece: King, Capture: target.Kind()}
		}
		if g.kingMoveIsLegal(mv) {
			*out = append(*out, mv)
		}
	}
}

func (g *genState) kingMoveIsLegal(mv Move) bool {
	u := g.p.MakeMove(mv)
	legal := !g.p.InCheck(g.us)
	g.p.UnmakeMove(u)
	return legal
}

func (g *genState) castles(out *[]Move) {
	if len(g.checkers) > 0 {
		return
	}
	p := g.p
	us := g.us
	them := g.them

	if us == White {
		if p.castling.IsAllowed(WhiteKingSide) &&
			p.board[F1].IsEmpty() && p.board[G1].IsEmpty() &&
			p.board[H1] == NewPiece(White, Rook) &&
			!p.IsAttacked(them, E1) && !p.IsAttacked(them, F1) && !p.IsAttacked(them, G1) {
			*out = append(*out, Move{Type: KingSideCastle, From: E1, To: G1, Piece: King})
		}
		if p.castling.IsAllowed(WhiteQueenSide) &&
			p.board[D1].IsEmpty() && p.board[C1].IsEmpty() && p.board[B1].IsEmpty() &&
			p.board[A1] == NewPiece(White, Rook) &&
			!p.IsAttacked(them, E1) && !p.IsAttacked(them, D1) && !p.IsAttacked(them, C1) {
			*out = append(*out, Move{Type: QueenSideCastle, From: E1, To: C1, Piece: King})
		}
		return
	}

	if p.castling.IsAllowed(BlackKingSide) &&
		p.board[F8].IsEmpty() && p.board[G8].IsEmpty() &&
		p.board[H8] == NewPiece(Black, Rook) &&
		!p.IsAttacked(them, E8) && !p.IsAttacked(them, F8) && !p.IsAttacked(them, G8) {
		*out = append(*out, Move{Type: KingSideCastle, From: E8, To: G8, Piece: King})
	}
	if p.castling.IsAllowed(BlackQueenSide) &&
		p.board[D8].IsEmpty() && p.board[C8].IsEmpty() && p.board[B8].IsEmpty() &&
		p.board[A8] == NewPiece(Black, Rook) &&
		!p.IsAttacked(them, E8) && !p.IsAttacked(them, D8) && !p.IsAttacked(them, C8) {
		*out = append(*out, Move{Type: QueenSideCastle, From: E8, To: C8, Piece: King})
	}
}

func (g *genState) knightMoves(out *[]Move) {
	p := g.p
	for _, sq := range g.pieceSquares(Knight) {
		if _, pinned := g.pinned[sq]; pinned {
			continue // a pinned knight never has a legal move
		}
		for _, d := range knightDeltas {
			to := sq + Square(d)
			if !to.IsValid() || !g.destinationAllowed(to) {
				continue
			}
			target := p.board[to]
			if !target.IsEmpty() && target.Color() == g.us {
				continue
			}
			if target.IsEmpty() {
				*out = append(*out, Move{Type: Quiet, From: sq, To: to, Piece: Knight})
			} else {
				*out = append(*out, Move{Type: Capture, From: sq, To: to, Piece: Knight, Capture: target.Kind()})
			}
		}
	}
}

func (g *genState) sliderMoves(kind Kind, attacks func(p *Position, sq Square) []Square, out *[]Move) {
	p := g.p
	for _, sq := range g.pieceSquares(kind) {
		d, pinned := g.pinned[sq]
		for _, to := range attacks(p, sq) {
			if !g.destinationAllowed(to) {
				continue
			}
			if pinned && lineDir(g.ksq, to) != d {
				continue
			}
			target := p.board[to]
			if !target.IsEmpty() && target.Color() == g.us {
				continue
			}
			if target.IsEmpty() {
				*out = append(*out, Move{Type: Quiet, From: sq, To: to, Piece: kind})
			} else {
				*out = append(*out, Move{Type: Capture, From: sq, To: to, Piece: kind, Capture: target.Kind()})
			}
		}
	}
}

func (g *genState) pawnMoves(out *[]Move) {
	p := g.p
	us := g.us

	var forward, startRank, promoRank int
	if us == White {
		forward, startRank, promoRank = deltaN, 1, 7
	} else {
		forward, startRank, promoRank = deltaS, 6, 0
	}
	capDeltas := [2]int{forward + deltaE, forward + deltaW}

	for _, sq := range g.pieceSquares(Pawn) {
		d, pinned := g.pinned[sq]
		allowed := func(to Square) bool {
			return !pinned || lineDir(g.ksq, to) == d
		}

		one := sq + Square(forward)
		if one.IsValid() && p.board[one].IsEmpty() {
			if allowed(one) && g.destinationAllowed(one) {
				addPawnAdvance(sq, one, promoRank, out)
			}
			if sq.Rank() == startRank {
				two := one + Square(forward)
				if two.IsValid() && p.board[two].IsEmpty() && allowed(two) && g.destinationAllowed(two) {
					*out = append(*out, Move{Type: DoublePush, From: sq, To: two, Piece: Pawn})
				}
			}
		}

		for _, cd := range capDeltas {
			to := sq + Square(cd)
			if !to.IsValid() {
				continue
			}

			target := p.board[to]
			if !target.IsEmpty() {
				if target.Color() == us || !allowed(to) || !g.destinationAllowed(to) {
					continue
				}
				if to.Rank() == promoRank {
					for _, promo := range promotionKinds {
						*out = append(*out, Move{Type: CapturePromotion, From: sq, To: to, Piece: Pawn, Promotion: promo, Capture: target.Kind()})
					}
				} else {
					*out = append(*out, Move{Type: Capture, From: sq, To: to, Piece: Pawn, Capture: target.Kind()})
				}
				continue
			}

			if ep, ok := p.EnPassant(); ok && to == ep {
				if !allowed(to) {
					continue
				}
				mv := Move{Type: EnPassant, From: sq, To: to, Piece: Pawn, Capture: Pawn}
				capSq := mv.EnPassantCaptureSquare()
				if len(g.checkers) > 0 && !g.blockSet[capSq] {
					continue
				}
				if g.epIsLegal(mv) {
					*out = append(*out, mv)
				}
			}
		}
	}
}

func addPawnAdvance(from, to Square, promoRank int, out *[]Move) {
	if to.Rank() == promoRank {
		for _, promo := range promotionKinds {
			*out = append(*out, Move{Type: Promotion, From: from, To: to, Piece: Pawn, Promotion: promo})
		}
		return
	}
	*out = append(*out, Move{Type: Quiet, From: from, To: to, Piece: Pawn})
}

// epIsLegal verifies an en passant capture by make/unmake: removing both
// pawns from the rank can expose a discovered check along that rank that no
// static pin test catches (Section 4.3, Section 9).
func (g *genState) epIsLegal(mv Move) bool {
	u := g.p.MakeMove(mv)
	legal := !g.p.InCheck(g.us)
	g.p.UnmakeMove(u)
	return legal
}

// HasLegalMove reports whether the side to move has any legal move.
func HasLegalMove(p *Position) bool {
	return len(LegalMoves(p)) > 0
}

// IsCheckmate reports mate: in check, with no legal move.
func IsCheckmate(p *Position) bool {
	return p.InCheck(p.Turn()) && !HasLegalMove(p)
}

// IsStalemate reports stalemate: not in check, with no legal move.
func IsStalemate(p *Position) bool {
	return !p.InCheck(p.Turn()) && !HasLegalMove(p)
}

// IsFiftyMoveDraw reports the fifty-move (100 halfmove) rule.
func IsFiftyMoveDraw(p *Position) bool {
	return p.HalfmoveClock() >= 100
}

// InsufficientMaterial reports the unambiguous dead positions: bare kings,
// or a lone minor piece against a bare king. Positions with two or more
// minors left on the board are left to the search/engine's draw handling
// rather than risk misclassifying a position with real mating chances.
func InsufficientMaterial(p *Position) bool {
	count := 0
	for sq := Square(0); sq < 128; sq++ {
		if !sq.IsValid() {
			continue
		}
		pc := p.board[sq]
		if pc.IsEmpty() || pc.Kind() == King {
			continue
		}
		if pc.Kind() != Knight && pc.Kind() != Bishop {
			return false
		}
		count++
		if count > 1 {
			return false
		}
	}
	return true
}
