// Package search implements the move search: candidate generation with
// ranked truncation, depth-limited minimax over the truncated candidates,
// and memoization of results per position and depth.
package search

import (
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/patzerhq/patzer/board"
	"github.com/patzerhq/patzer/eval"
	"github.com/patzerhq/patzer/move"
	"github.com/patzerhq/patzer/movegen"
)

const (
	// DefaultDepth is the search depth in plies.
	DefaultDepth = 3
	// DefaultMoveLimit caps how many ranked candidates are explored per
	// ply. The truncation is the search's only pruning; depth times limit
	// bounds the total work.
	DefaultMoveLimit = 10
)

// A Context carries the state of one search ply: the remaining depth and
// whose move it is.
type Context struct {
	Depth       int
	WhiteToMove bool
}

// Next descends one ply: depth minus one, other side to move. This is the
// sole context transition.
func (c Context) Next() Context {
	return Context{Depth: c.Depth - 1, WhiteToMove: !c.WhiteToMove}
}

// A Solver runs the minimax search. It owns the search memo table, whose
// lifetime should span a game session. Single-threaded.
type Solver struct {
	gen       *movegen.Generator
	evaluator *eval.Evaluator
	moveLimit int

	table   map[string]*move.Move
	lookups uint64
	hits    uint64
}

func NewSolver(gen *movegen.Generator, evaluator *eval.Evaluator, moveLimit int) *Solver {
	if moveLimit <= 0 {
		moveLimit = DefaultMoveLimit
	}
	return &Solver{
		gen:       gen,
		evaluator: evaluator,
		moveLimit: moveLimit,
		table:     make(map[string]*move.Move),
	}
}

// RankMoves evaluates every legal move of the side to move: each
// (piece, target) pair is tried on the board, scored by the evaluator,
// and undone. The result is sorted best-for-the-mover first (descending
// scores for White, ascending for Black; ties keep generation order) and
// truncated to limit entries.
func (s *Solver) RankMoves(b *board.Board, ctx Context, limit int) []*move.Move {
	var moves []*move.Move
	for p := range b.Pieces(ctx.WhiteToMove) {
		for _, target := range s.gen.Valid(b, p) {
			captured := b.Get(target)
			var score float64
			b.Simulate(p, target, func() {
				score = s.evaluator.Evaluate(b)
			})
			moves = append(moves, move.New(p, target, score, captured != nil))
		}
	}
	sortForMover(moves, ctx.WhiteToMove)
	if len(moves) > limit {
		moves = moves[:limit]
	}
	return moves
}

// Search runs the depth-limited minimax from the given context and
// returns the best move for the side to move. With no legal moves it
// returns the sentinel move (checkmate and stalemate are not
// distinguished). At depth 1 the static ranking decides; deeper, each
// truncated candidate is re-scored by the opponent's best reply.
func (s *Solver) Search(b *board.Board, ctx Context) *move.Move {
	moves := s.RankMoves(b, ctx, s.moveLimit)
	if len(moves) == 0 {
		return move.NoLegal(ctx.WhiteToMove)
	}
	if ctx.Depth <= 1 {
		return moves[0]
	}
	for _, m := range moves {
		var reply *move.Move
		b.Simulate(m.Piece, m.To, func() {
			reply = s.SearchCached(b, ctx.Next())
		})
		m.Score = reply.Score
	}
	sortForMover(moves, ctx.WhiteToMove)
	return moves[0]
}

// SearchCached memoizes Search keyed by remaining depth and position
// fingerprint. A best move cached at one depth is not reused at another:
// the depth is part of the key.
func (s *Solver) SearchCached(b *board.Board, ctx Context) *move.Move {
	key := strconv.Itoa(ctx.Depth) + ":" + b.Fingerprint()
	s.lookups++
	if m, ok := s.table[key]; ok {
		s.hits++
		return m
	}
	best := s.Search(b, ctx)
	s.table[key] = best
	return best
}

// ResetCache drops all memoized results and zeroes the counters. Cached
// moves hold pieces of the board they were searched on, so the table
// must not outlive the game it was filled during.
func (s *Solver) ResetCache() {
	s.table = make(map[string]*move.Move)
	s.lookups = 0
	s.hits = 0
}

// Suggest picks the engine's move for the side to move at the given
// depth, logging cache statistics along the way.
func (s *Solver) Suggest(b *board.Board, depth int, whiteToMove bool) *move.Move {
	if depth <= 0 {
		depth = DefaultDepth
	}
	best := s.SearchCached(b, Context{Depth: depth, WhiteToMove: whiteToMove})
	log.Debug().
		Int("table-entries", len(s.table)).
		Uint64("lookups", s.lookups).
		Uint64("hits", s.hits).
		Str("best", best.String()).
		Msg("search-cache-stats")
	s.gen.LogCacheStats()
	return best
}

// RandomMove picks uniformly among all legal White moves with a zero
// score, or returns nil if White has none. A degenerate non-search mode
// kept for weak-opponent play.
func (s *Solver) RandomMove(b *board.Board) *move.Move {
	var moves []*move.Move
	for p := range b.Pieces(true) {
		for _, target := range s.gen.Valid(b, p) {
			moves = append(moves, move.New(p, target, 0, b.Get(target) != nil))
		}
	}
	if len(moves) == 0 {
		return nil
	}
	return moves[frand.Intn(len(moves))]
}

func sortForMover(moves []*move.Move, whiteToMove bool) {
	sort.SliceStable(moves, func(i, j int) bool {
		if whiteToMove {
			return moves[i].Score > moves[j].Score
		}
		return moves[i].Score < moves[j].Score
	})
}
