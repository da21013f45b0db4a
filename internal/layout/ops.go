// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/layout/ops.go
// Summary: Pure reordering primitives over a tiled-window sequence (spec §4.1).

package layout

// Position names the positional move targets bound to keybinds in §6.
type Position int

const (
	First Position = iota
	Last
	OneEarlier
	OneLater
)

// SwapWithFirst swaps index 0 and the index of w in tiled, returning a new
// slice. A no-op (returns tiled unchanged) if w is already first, not
// present, or tiled has fewer than 2 elements.
func SwapWithFirst[ID comparable](tiled []ID, w ID) []ID {
	if len(tiled) < 2 {
		return tiled
	}
	idx := indexOf(tiled, w)
	if idx <= 0 {
		return tiled
	}
	out := append([]ID(nil), tiled...)
	out[0], out[idx] = out[idx], out[0]
	return out
}

// RotateNext moves the last element to the front (wrap right).
func RotateNext[ID comparable](tiled []ID) []ID {
	if len(tiled) < 2 {
		return tiled
	}
	out := make([]ID, len(tiled))
	out[0] = tiled[len(tiled)-1]
	copy(out[1:], tiled[:len(tiled)-1])
	return out
}

// RotatePrev moves the first element to the back (wrap left).
func RotatePrev[ID comparable](tiled []ID) []ID {
	if len(tiled) < 2 {
		return tiled
	}
	out := make([]ID, len(tiled))
	copy(out, tiled[1:])
	out[len(out)-1] = tiled[0]
	return out
}

// MovePosition repositions w within tiled according to pos. No-op under
// the same conditions as SwapWithFirst.
func MovePosition[ID comparable](tiled []ID, w ID, pos Position) []ID {
	if len(tiled) < 2 {
		return tiled
	}
	idx := indexOf(tiled, w)
	if idx < 0 {
		return tiled
	}

	out := append([]ID(nil), tiled[:idx]...)
	out = append(out, tiled[idx+1:]...)

	switch pos {
	case First:
		return append([]ID{w}, out...)
	case Last:
		return append(out, w)
	case OneEarlier:
		newIdx := idx - 1
		if newIdx < 0 {
			newIdx = 0
		}
		return insertAt(out, newIdx, w)
	case OneLater:
		newIdx := idx + 1
		if newIdx > len(out) {
			newIdx = len(out)
		}
		return insertAt(out, newIdx, w)
	default:
		return tiled
	}
}

func indexOf[ID comparable](tiled []ID, w ID) int {
	for i, id := range tiled {
		if id == w {
			return i
		}
	}
	return -1
}

func insertAt[ID comparable](s []ID, idx int, w ID) []ID {
	out := make([]ID, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, w)
	out = append(out, s[idx:]...)
	return out
}
