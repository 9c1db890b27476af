package dice

import "math"

// Relation is the outcome of comparing two dice across all face pairs.
type Relation int

const (
	// RelationTie indicates neither die wins more pairs than the other
	RelationTie Relation = iota

	// RelationWinsAgainst indicates the first die wins more pairs
	RelationWinsAgainst

	// RelationLosesAgainst indicates the first die loses more pairs
	RelationLosesAgainst
)

func (r Relation) String() string {
	switch r {
	case RelationWinsAgainst:
		return "wins against"
	case RelationLosesAgainst:
		return "loses against"
	default:
		return "ties with"
	}
}

const pairCount = FaceCount * FaceCount

// PairwiseWinProbability returns the percentage of the 36 ordered face
// pairs where a strictly beats b, rounded to one decimal place. Ties count
// for neither die, so the probabilities for (a,b) and (b,a) need not sum
// to 100.
func PairwiseWinProbability(a, b Die) float64 {
	wins := 0
	for _, av := range a.faces {
		for _, bv := range b.faces {
			if av > bv {
				wins++
			}
		}
	}

	return math.Round(float64(wins)*100*10/pairCount) / 10
}

// Compare counts strict wins and losses across all 36 face pairs. A cycle
// of wins across a set is a legitimate outcome; nothing forces the relation
// into a total order.
func Compare(a, b Die) Relation {
	wins, losses := 0, 0
	for _, av := range a.faces {
		for _, bv := range b.faces {
			switch {
			case av > bv:
				wins++
			case av < bv:
				losses++
			}
		}
	}

	switch {
	case wins > losses:
		return RelationWinsAgainst
	case losses > wins:
		return RelationLosesAgainst
	default:
		return RelationTie
	}
}
