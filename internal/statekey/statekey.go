// Package statekey implements compact canonical state keys for puzzle states.
//
// A key encodes the player cell and the sorted box cells of a dynamic state
// as packed 16-bit cell indices. Two states reached by different move orders
// but with identical player and box placement produce identical keys, which
// is what the solvers' visited sets deduplicate on.
package statekey

import (
	"encoding/base64"
	"errors"
	"sort"
)

// MaxCells is the largest cell index a key can encode.
const MaxCells = 1 << 16

// Key is a canonical state identity. Keys are comparable and usable as map
// keys; the zero value is not a valid key.
type Key string

// ErrCellRange is returned when a cell index does not fit the encoding.
var ErrCellRange = errors.New("statekey: cell index out of range")

// Make builds a key from a player cell index and box cell indices.
// The boxes slice is not modified; ordering of boxes does not affect the key.
func Make(player int, boxes []int) (Key, error) {
	if player < 0 || player >= MaxCells {
		return "", ErrCellRange
	}
	sorted := make([]int, len(boxes))
	copy(sorted, boxes)
	sort.Ints(sorted)

	buf := make([]byte, 0, 2+2*len(sorted))
	buf = appendCell(buf, player)
	for _, b := range sorted {
		if b < 0 || b >= MaxCells {
			return "", ErrCellRange
		}
		buf = appendCell(buf, b)
	}
	return Key(buf), nil
}

// MakeBoxes builds a key from box cell indices alone. Used where only box
// placement matters, e.g. memoizing heuristic values.
func MakeBoxes(boxes []int) (Key, error) {
	sorted := make([]int, len(boxes))
	copy(sorted, boxes)
	sort.Ints(sorted)

	buf := make([]byte, 0, 2*len(sorted))
	for _, b := range sorted {
		if b < 0 || b >= MaxCells {
			return "", ErrCellRange
		}
		buf = appendCell(buf, b)
	}
	return Key(buf), nil
}

func appendCell(buf []byte, cell int) []byte {
	return append(buf, byte(cell>>8), byte(cell))
}

// ID returns a short URL-safe textual form of the key, suitable for
// correlating states in API responses and logs.
func (k Key) ID() string {
	return base64.RawURLEncoding.EncodeToString([]byte(k))
}

// Cells decodes the packed cell indices in key order (player first for keys
// built with Make).
func (k Key) Cells() []int {
	b := []byte(k)
	cells := make([]int, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		cells = append(cells, int(b[i])<<8|int(b[i+1]))
	}
	return cells
}
