// Package engine implements the transposition table and negamax
// alpha-beta search that operate on a board.Position: spec §4.4/§4.5.
package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talonchess/talon/board"
)

// defaultHashSizeMB is the transposition table size used when no
// WithHashSizeMB option is supplied.
const defaultHashSizeMB = 32

// defaultMaxDepth caps iterative deepening when no WithMaxDepth option is
// supplied and the caller asks BestMove for a depth beyond it.
const defaultMaxDepth = 32

// Options configures a Session, built with the functional-options pattern.
// The teacher wires its Engine directly from UCI option values
// (engine/engine.go's IntUciOption/BoolUciOption); Talon has no UCI
// surface (spec.md §1 excludes command-line/protocol front ends), so its
// equivalent knobs are exposed as plain Go options instead.
type Options struct {
	HashSizeMB int
	MaxDepth   int
	NodeLimit  int64
	Logger     zerolog.Logger
}

// Option mutates Options during NewSession.
type Option func(*Options)

// WithHashSizeMB sets the transposition table's size.
func WithHashSizeMB(mb int) Option {
	return func(o *Options) { o.HashSizeMB = mb }
}

// WithMaxDepth caps iterative deepening regardless of the depth requested
// from BestMove.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithNodeLimit bounds the number of nodes a single BestMove call may
// visit; zero (the default) means unbounded.
func WithNodeLimit(nodes int64) Option {
	return func(o *Options) { o.NodeLimit = nodes }
}

// WithLogger attaches a zerolog.Logger for per-iteration diagnostics. The
// zero Logger (the default) discards everything, matching zerolog's
// documented nop behavior — logging here is an observability hook, not
// part of the search contract (spec.md's Open Questions note on node-count
// logging).
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Session owns a transposition table and history table across repeated
// BestMove calls, so work done searching one position benefits the next
// (spec §4.4). A Session is not safe for concurrent use; spec §5 confines
// the core to a single search thread at a time.
type Session struct {
	opts    Options
	tt      *TranspositionTable
	history *historyTable
}

// NewSession builds a Session with opts applied over defaults.
func NewSession(opts ...Option) *Session {
	o := Options{
		HashSizeMB: defaultHashSizeMB,
		MaxDepth:   defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		opts:    o,
		tt:      NewTranspositionTable(o.HashSizeMB),
		history: newHistoryTable(),
	}
}

// BestMove searches pos to depth (capped by the Session's MaxDepth) via
// iterative deepening and returns the best move found along with its
// score from the side-to-move's perspective. It fails with
// ErrNoLegalMoves if pos has no legal moves at all.
//
// Cancellation is cooperative: ctx is checked at node entry, and on
// cancellation mid-iteration BestMove returns the best move found at the
// previous fully-completed depth (spec §4.5). If depth 1 itself never
// completes, BestMove returns ctx.Err() when that's why, or
// ErrSearchIncomplete otherwise (a non-positive depth, or a WithNodeLimit
// abort before any iteration finished) — callers must not treat a zero
// Move and nil error as success.
func (sess *Session) BestMove(ctx context.Context, pos *board.Position, depth int) (board.Move, int, error) {
	if len(pos.LegalMoves()) == 0 {
		return board.Move{}, 0, ErrNoLegalMoves
	}

	maxDepth := depth
	if sess.opts.MaxDepth > 0 && sess.opts.MaxDepth < maxDepth {
		maxDepth = sess.opts.MaxDepth
	}

	sess.tt.NewSearch()
	s := &searcher{
		ctx:     ctx,
		tt:      sess.tt,
		history: sess.history,
		limit:   sess.opts.NodeLimit,
	}

	var bestMove board.Move
	var bestScore int
	completed := false

	for d := 1; d <= maxDepth; d++ {
		score, move, aborted := s.negamax(pos, d, 0, -valueInfinity, valueInfinity)
		if aborted {
			break
		}
		bestScore, bestMove, completed = score, move, true
		sess.opts.Logger.Debug().
			Int("depth", d).
			Int("score", bestScore).
			Int64("nodes", s.nodes).
			Str("move", bestMove.String()).
			Msg("iteration complete")
		if bestScore >= valueWin || bestScore <= valueLoss {
			break
		}
	}

	if !completed {
		if err := ctx.Err(); err != nil {
			return board.Move{}, 0, err
		}
		return board.Move{}, 0, ErrSearchIncomplete
	}
	return bestMove, bestScore, nil
}
