// Package dice holds the validated die set and the pairwise comparison
// algebra used by the help table.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FaceCount is the number of faces on every die
const FaceCount = 6

// MinDice is the smallest playable set
const MinDice = 3

// ErrTooFewDice indicates fewer than three dice were configured
var ErrTooFewDice = errors.New("at least three dice are required")

// ErrFaceCount indicates a die does not have exactly six faces
var ErrFaceCount = errors.New("each die must have exactly six faces")

// ErrBadFace indicates a face value is not an integer
var ErrBadFace = errors.New("face values must be integers")

// Die is an immutable six-faced die. Face values may repeat and carry no
// range or ordering constraint.
type Die struct {
	faces [FaceCount]int
}

// NewDie creates a die from exactly six face values
func NewDie(faces []int) (Die, error) {
	if len(faces) != FaceCount {
		return Die{}, fmt.Errorf("%w, got %d", ErrFaceCount, len(faces))
	}

	var d Die
	copy(d.faces[:], faces)
	return d, nil
}

// Face returns the face value at index i
func (d Die) Face(i int) int {
	return d.faces[i]
}

// Faces returns a copy of the face values
func (d Die) Faces() []int {
	faces := make([]int, FaceCount)
	copy(faces, d.faces[:])
	return faces
}

// String renders the die in its configuration form, e.g. "2,2,4,4,9,9"
func (d Die) String() string {
	parts := make([]string, FaceCount)
	for i, face := range d.faces {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, ",")
}

// Set is an immutable collection of at least three dice, built once at
// startup and shared for the process lifetime.
type Set struct {
	dice []Die
}

// NewSet creates a set from at least three dice
func NewSet(dice []Die) (*Set, error) {
	if len(dice) < MinDice {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewDice, len(dice))
	}

	owned := make([]Die, len(dice))
	copy(owned, dice)

	return &Set{dice: owned}, nil
}

// Parse builds a set from configuration strings, one die per argument in
// the form "2,2,4,4,9,9"
func Parse(args []string) (*Set, error) {
	if len(args) < MinDice {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewDice, len(args))
	}

	dice := make([]Die, 0, len(args))
	for i, arg := range args {
		die, err := parseDie(arg)
		if err != nil {
			return nil, fmt.Errorf("die %d (%q): %w", i+1, arg, err)
		}
		dice = append(dice, die)
	}

	return NewSet(dice)
}

func parseDie(arg string) (Die, error) {
	tokens := strings.Split(arg, ",")
	if len(tokens) != FaceCount {
		return Die{}, fmt.Errorf("%w, got %d", ErrFaceCount, len(tokens))
	}

	faces := make([]int, 0, FaceCount)
	for _, token := range tokens {
		face, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return Die{}, fmt.Errorf("%w, got %q", ErrBadFace, token)
		}
		faces = append(faces, face)
	}

	return NewDie(faces)
}

// Len returns the number of dice in the set
func (s *Set) Len() int {
	return len(s.dice)
}

// Die returns the die at index i
func (s *Set) Die(i int) Die {
	return s.dice[i]
}

// Dice returns a copy of the dice in configuration order
func (s *Set) Dice() []Die {
	dice := make([]Die, len(s.dice))
	copy(dice, s.dice)
	return dice
}
