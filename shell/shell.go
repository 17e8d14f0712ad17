// Package shell is the interactive front end: a readline loop that plays
// a game on a single board, either human-vs-human or human-vs-engine.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/patzerhq/patzer/board"
	"github.com/patzerhq/patzer/boardio"
	"github.com/patzerhq/patzer/config"
	"github.com/patzerhq/patzer/eval"
	"github.com/patzerhq/patzer/move"
	"github.com/patzerhq/patzer/movegen"
	"github.com/patzerhq/patzer/search"
)

type ShellController struct {
	l *readline.Instance

	cfg       *config.Config
	b         *board.Board
	gen       *movegen.Generator
	evaluator *eval.Evaluator
	solver    *search.Solver

	vsEngine    bool
	whiteToMove bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - print the board\n")
	io.WriteString(w, "move <from><to> - play a move, e.g. move e2e4\n")
	io.WriteString(w, "moves <cell> - list legal moves for the piece on <cell>\n")
	io.WriteString(w, "hint - let the engine suggest a move for the side to move\n")
	io.WriteString(w, "random - play a uniformly random legal move (White only)\n")
	io.WriteString(w, "eval - print the static evaluation (White's perspective)\n")
	io.WriteString(w, "save [path] - write the position to a file\n")
	io.WriteString(w, "load <path> - read a position from a file\n")
	io.WriteString(w, "new - reset to the initial position\n")
	io.WriteString(w, "exit - leave the shell\n")
}

// NewShellController sets up a fresh game. When vsEngine is true the
// engine answers for Black after every committed White move.
func NewShellController(cfg *config.Config, vsEngine bool) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "patzer> ",
		HistoryFile:         "/tmp/readline.tmp",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	gen := movegen.NewGenerator()
	evaluator := eval.New(gen, cfg.Heuristics)
	b := board.NewBoard()
	b.Reset()

	return &ShellController{
		l:           l,
		cfg:         cfg,
		b:           b,
		gen:         gen,
		evaluator:   evaluator,
		solver:      search.NewSolver(gen, evaluator, cfg.MoveLimit),
		vsEngine:    vsEngine,
		whiteToMove: true,
	}, nil
}

// Loop reads and dispatches commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	showMessage(sc.b.String(), sc.l.Stderr())
	for {
		line, err := sc.l.Readline()
		if err != nil {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "exit", "quit":
			return
		case "help":
			usage(sc.l.Stderr())
		case "show":
			showMessage(sc.b.String(), sc.l.Stderr())
		case "new":
			sc.b.Reset()
			sc.whiteToMove = true
			sc.solver.ResetCache()
			showMessage(sc.b.String(), sc.l.Stderr())
		case "eval":
			showMessage(fmt.Sprintf("evaluation: %.2f", sc.evaluator.Evaluate(sc.b)), sc.l.Stderr())
		case "moves":
			sc.listMoves(args)
		case "move":
			sc.playMove(args)
		case "hint":
			sc.hint()
		case "random":
			sc.playRandom()
		case "save":
			sc.save(args)
		case "load":
			sc.load(args)
		default:
			showMessage("unknown command; type help", sc.l.Stderr())
		}
	}
}

func (sc *ShellController) sideName() string {
	if sc.whiteToMove {
		return "White"
	}
	return "Black"
}

func (sc *ShellController) listMoves(args []string) {
	if len(args) != 1 {
		showMessage("usage: moves <cell>", sc.l.Stderr())
		return
	}
	c, err := board.ParseCell(args[0])
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return
	}
	p := sc.b.Get(c)
	if p == nil {
		showMessage("no piece on "+args[0], sc.l.Stderr())
		return
	}
	cells := sc.gen.Valid(sc.b, p)
	if len(cells) == 0 {
		showMessage(p.String()+" has no legal moves", sc.l.Stderr())
		return
	}
	var targets []string
	for _, c := range cells {
		targets = append(targets, c.String())
	}
	showMessage(p.String()+": "+strings.Join(targets, " "), sc.l.Stderr())
}

// playMove validates and commits a user move given as "e2e4". The
// destination must be one of the source piece's legal cells.
func (sc *ShellController) playMove(args []string) {
	if len(args) != 1 || len(args[0]) != 4 {
		showMessage("usage: move <from><to>, e.g. move e2e4", sc.l.Stderr())
		return
	}
	from, err := board.ParseCell(args[0][:2])
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return
	}
	to, err := board.ParseCell(args[0][2:])
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return
	}
	p := sc.b.Get(from)
	if p == nil {
		showMessage("no piece on "+from.String(), sc.l.Stderr())
		return
	}
	if p.IsWhite() != sc.whiteToMove {
		showMessage("it is "+sc.sideName()+"'s turn", sc.l.Stderr())
		return
	}
	legal := false
	for _, c := range sc.gen.Valid(sc.b, p) {
		if c == to {
			legal = true
			break
		}
	}
	if !legal {
		showMessage(p.String()+" cannot move to "+to.String(), sc.l.Stderr())
		return
	}
	sc.commit(p, to)
}

func (sc *ShellController) hint() {
	best := sc.solver.Suggest(sc.b, sc.cfg.SearchDepth, sc.whiteToMove)
	if best.IsSentinel() {
		showMessage(sc.sideName()+" has no legal moves", sc.l.Stderr())
		return
	}
	showMessage("engine suggests "+best.String(), sc.l.Stderr())
}

func (sc *ShellController) playRandom() {
	if !sc.whiteToMove {
		showMessage("random moves are only played for White", sc.l.Stderr())
		return
	}
	m := sc.solver.RandomMove(sc.b)
	if m == nil {
		showMessage("no legal moves left; game over", sc.l.Stderr())
		return
	}
	showMessage("playing "+m.ShortDescription(), sc.l.Stderr())
	sc.commit(m.Piece, m.To)
}

// commit applies a validated move, flips the turn, reports check and game
// over, and in engine mode lets the engine answer.
func (sc *ShellController) commit(p *board.Piece, to board.Cell) {
	if err := sc.b.Set(to, p); err != nil {
		log.Error().Err(err).Msg("committing move")
		return
	}
	sc.whiteToMove = !sc.whiteToMove
	showMessage(sc.b.String(), sc.l.Stderr())

	if sc.gen.InCheck(sc.b, sc.whiteToMove) {
		showMessage(sc.sideName()+" is in check", sc.l.Stderr())
	}
	if !sc.hasLegalMoves() {
		showMessage(sc.sideName()+" has no legal moves; game over", sc.l.Stderr())
		return
	}
	if sc.vsEngine && !sc.whiteToMove {
		sc.engineReply()
	}
}

func (sc *ShellController) engineReply() {
	best := sc.solver.Suggest(sc.b, sc.cfg.SearchDepth, false)
	if best.IsSentinel() {
		showMessage("Black has no legal moves; game over", sc.l.Stderr())
		return
	}
	mover := resolveMover(sc.b, best)
	if mover == nil {
		log.Error().Str("move", best.String()).Msg("suggested move does not match the board")
		return
	}
	showMessage("engine plays "+best.String(), sc.l.Stderr())
	sc.commit(mover, best.To)
}

// resolveMover maps a suggested move back onto the piece that currently
// occupies its source cell. Memoized moves carry pieces of the board they
// were searched on; committing must always move this board's piece.
func resolveMover(b *board.Board, m *move.Move) *board.Piece {
	if m == nil || m.IsSentinel() {
		return nil
	}
	p := b.Get(m.From)
	if p == nil || p.Kind() != m.Piece.Kind() || p.IsWhite() != m.Piece.IsWhite() {
		return nil
	}
	return p
}

func (sc *ShellController) hasLegalMoves() bool {
	for p := range sc.b.Pieces(sc.whiteToMove) {
		if len(sc.gen.Valid(sc.b, p)) > 0 {
			return true
		}
	}
	return false
}

func (sc *ShellController) save(args []string) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	written, err := boardio.Save(sc.b, path)
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return
	}
	showMessage("saved to "+written, sc.l.Stderr())
}

func (sc *ShellController) load(args []string) {
	if len(args) != 1 {
		showMessage("usage: load <path>", sc.l.Stderr())
		return
	}
	b, err := boardio.Load(args[0])
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return
	}
	sc.b = b
	sc.whiteToMove = true
	sc.solver.ResetCache()
	showMessage(sc.b.String(), sc.l.Stderr())
}
