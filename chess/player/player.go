// SPDX-License-Identifier: MIT

// Package player defines the two sides of a chess game.
package player

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayer is returned when a Player outside {White, Black} is used.
var ErrInvalidPlayer = errors.New("player: invalid player")

// Player identifies a side. The zero value is not a valid player.
type Player int

const (
	White Player = iota + 1
	Black
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = White

// String returns "White" or "Black"; anything else renders as "Player(<n>)".
func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Valid reports whether p is White or Black.
func (p Player) Valid() bool {
	return p == White || p == Black
}

// Validate returns ErrInvalidPlayer unless p is White or Black.
func (p Player) Validate() error {
	if !p.Valid() {
		return fmt.Errorf("%s: %w", p, ErrInvalidPlayer)
	}

	return nil
}

// Opponent returns the other side. Invalid players are returned unchanged.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return p
	}
}
