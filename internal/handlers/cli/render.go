package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/KirkDiggler/fairdice/internal/services/game"
)

// renderHelpTable prints the pairwise win-probability matrix. Each cell is
// the probability that the row die beats the column die; the diagonal is
// parenthesized since a die cannot play itself.
func renderHelpTable(w io.Writer, set *dice.Set) {
	fmt.Fprintln(w, "Probability of the win for the user:")

	header := []string{"User dice v"}
	for i := 0; i < set.Len(); i++ {
		header = append(header, set.Die(i).String())
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)

	for i := 0; i < set.Len(); i++ {
		row := []string{set.Die(i).String()}
		for j := 0; j < set.Len(); j++ {
			p := dice.PairwiseWinProbability(set.Die(i), set.Die(j))
			cell := strconv.FormatFloat(p, 'f', 1, 64)
			if i == j {
				cell = "- (" + cell + ")"
			}
			row = append(row, cell)
		}
		table.Append(row)
	}

	table.Render()
}

// renderTranscript prints every exchange with the revealed secrets and
// keys so the user can recompute each HMAC independently.
func renderTranscript(w io.Writer, exchanges []*models.Exchange) {
	if len(exchanges) == 0 {
		return
	}

	fmt.Fprintln(w, "Exchange transcript (recompute HMAC-SHA3-256(key, my number) to verify):")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Purpose", "Range", "HMAC", "My number", "Key", "Your number", "Result"})

	for i, e := range exchanges {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Label,
			fmt.Sprintf("0..%d", e.Max-1),
			e.DigestHex(),
			strconv.Itoa(e.Secret),
			e.KeyHex(),
			strconv.Itoa(e.UserValue),
			strconv.Itoa(e.Result),
		})
	}

	table.Render()
}

// renderRound prints the result of one played round
func renderRound(w io.Writer, set *dice.Set, out *game.PlayRoundOutput) {
	if out.FirstMover == game.MoverUser {
		fmt.Fprintln(w, "You make the first move.")
	} else {
		fmt.Fprintln(w, "I make the first move.")
	}

	fmt.Fprintf(w, "You chose the [%s] dice, I chose the [%s] dice.\n",
		set.Die(out.UserDie), set.Die(out.ComputerDie))
	fmt.Fprintf(w, "Your roll result is %d, my roll result is %d.\n",
		out.UserFace, out.ComputerFace)

	switch out.Outcome {
	case game.OutcomeUserWins:
		fmt.Fprintf(w, "You win (%d > %d)!\n", out.UserFace, out.ComputerFace)
	case game.OutcomeComputerWins:
		fmt.Fprintf(w, "I win (%d > %d)!\n", out.ComputerFace, out.UserFace)
	default:
		fmt.Fprintf(w, "It's a draw (%d = %d).\n", out.UserFace, out.ComputerFace)
	}
}
