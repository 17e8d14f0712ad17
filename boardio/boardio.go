// Package boardio reads and writes the text position format: eight lines
// from rank 8 down to rank 1, eight space-separated tokens per line, "."
// for an empty cell, a piece letter otherwise (uppercase White, lowercase
// Black). The format round-trips with board.Fingerprint.
package boardio

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/patzerhq/patzer/board"
)

// Parse builds a board from position text. Blank lines and leading
// whitespace are tolerated; anything else malformed is an error naming
// the offending line or token.
func Parse(data string) (*board.Board, error) {
	var rows []string
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) != board.Dim {
		return nil, fmt.Errorf("position must have %d rows, got %d", board.Dim, len(rows))
	}

	b := board.NewBoard()
	for i, line := range rows {
		row := board.Dim - 1 - i
		tokens := strings.Fields(line)
		if len(tokens) != board.Dim {
			return nil, fmt.Errorf("row %d must have %d cells, got %d", row+1, board.Dim, len(tokens))
		}
		for col, token := range tokens {
			if token == "." {
				continue
			}
			p, err := pieceFromToken(token)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row+1, err)
			}
			if err := b.Set(board.Cell{Row: row, Col: col}, p); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func pieceFromToken(token string) (*board.Piece, error) {
	if len(token) != 1 {
		return nil, fmt.Errorf("bad piece token %q", token)
	}
	letter := token[0]
	white := letter >= 'A' && letter <= 'Z'
	if !white {
		letter -= 'a' - 'A'
	}
	kind, ok := board.KindFromLetter(letter)
	if !ok {
		return nil, fmt.Errorf("bad piece token %q", token)
	}
	return board.NewPiece(kind, white), nil
}

// Serialize renders the position in the on-disk format.
func Serialize(b *board.Board) string {
	return b.Fingerprint() + "\n"
}

// Load reads a position file.
func Load(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded position")
	return b, nil
}

// Save writes the position to path, generating a filename from the
// position hash when path is empty, and returns the path written.
func Save(b *board.Board, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("position-%016x.board", b.Hash64())
	}
	if err := os.WriteFile(path, []byte(Serialize(b)), 0644); err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Msg("saved position")
	return path, nil
}
