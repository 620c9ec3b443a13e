package board

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

const cellWidth = 5

// ToDisplayText renders the board as a bordered grid.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", Dim) + "\n"
	sb.WriteString(border)
	for i := 0; i < Dim; i++ {
		sb.WriteString("|")
		for j := 0; j < Dim; j++ {
			cell := ""
			if b.grid[i][j] != 0 {
				cell = strconv.FormatUint(uint64(b.grid[i][j]), 10)
			}
			sb.WriteString(fmt.Sprintf("%*s|", cellWidth, cell))
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	return sb.String()
}

// String gives a compact one-line form, e.g. "[2 _ _ _][_ _ _ _]...".
func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < Dim; i++ {
		cells := make([]string, Dim)
		for j := 0; j < Dim; j++ {
			if b.grid[i][j] == 0 {
				cells[j] = "_"
			} else {
				cells[j] = strconv.FormatUint(uint64(b.grid[i][j]), 10)
			}
		}
		sb.WriteString("[" + strings.Join(cells, " ") + "]")
	}
	return sb.String()
}

// Parse reads a board written as four slash-separated rows of four
// space-separated cells, e.g. "2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0".
// Empty cells may be written as 0, _ or .
func Parse(s string) (Board, error) {
	var b Board
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Dim {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrBadBoard, Dim, len(rows))
	}
	for i, row := range rows {
		cells := strings.Fields(row)
		if len(cells) != Dim {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, i+1, len(cells))
		}
		for j, c := range cells {
			if c == "_" || c == "." {
				continue
			}
			v, err := strconv.ParseUint(c, 10, 32)
			if err != nil {
				return b, fmt.Errorf("%w: %q: %v", ErrBadBoard, c, err)
			}
			if v != 0 && (v < 2 || bits.OnesCount64(v) != 1) {
				return b, fmt.Errorf("%w: %d is not a power of two", ErrBadBoard, v)
			}
			if v > uint64(LargestTile) {
				return b, fmt.Errorf("%w: %d is larger than %d", ErrBadBoard, v, LargestTile)
			}
			b.grid[i][j] = Tile(v)
		}
	}
	return b, nil
}

// Fingerprint is a stable 64-bit hash of the cells. Unlike the board itself
// it is only an identity hint; two different boards can share one.
func (b Board) Fingerprint() uint64 {
	buf := make([]byte, 4*Dim*Dim)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			binary.LittleEndian.PutUint32(buf[4*(i*Dim+j):], uint32(b.grid[i][j]))
		}
	}
	return xxhash.Sum64(buf)
}
