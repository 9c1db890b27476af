package cli

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
	"github.com/KirkDiggler/fairdice/internal/services/game"
)

// ErrExit is returned when the user chooses to leave the game at a prompt
var ErrExit = errors.New("exit requested")

// ErrInputClosed is returned when stdin closes mid-prompt
var ErrInputClosed = errors.New("input closed")

// Console is the interactive prompting surface. It is the counterparty for
// fairness exchanges and the user's die picker; every prompt loops until
// the input is valid, so services never see an invalid value.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	set     *dice.Set
}

// ConsoleConfig holds the configuration for the console
type ConsoleConfig struct {
	// Input is the line source, usually os.Stdin
	Input io.Reader

	// Output receives prompts and game text, usually os.Stdout
	Output io.Writer

	// Set drives the help table shown on "?"
	Set *dice.Set
}

// NewConsole creates a new console
func NewConsole(cfg *ConsoleConfig) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Output == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.Set == nil {
		return nil, errors.New("die set cannot be nil")
	}

	return &Console{
		scanner: bufio.NewScanner(cfg.Input),
		out:     cfg.Output,
		set:     cfg.Set,
	}, nil
}

// AnnounceCommitment discloses the commitment digest before the user
// contributes
func (c *Console) AnnounceCommitment(ctx context.Context, input *fairness.AnnounceCommitmentInput) error {
	_, err := fmt.Fprintf(c.out, "Let's decide the %s: I selected a random value in the range 0..%d (HMAC=%s).\n",
		input.Label, input.Max-1, hex.EncodeToString(input.Digest))
	return err
}

// PromptValue blocks until the user supplies a value in [0, max)
func (c *Console) PromptValue(ctx context.Context, input *fairness.PromptValueInput) (*fairness.PromptValueOutput, error) {
	fmt.Fprintf(c.out, "Add your number modulo %d.\n", input.Max)

	options := make([]int, input.Max)
	for i := range options {
		options[i] = i
	}

	value, err := c.promptChoice(options, func(i int) string {
		return strconv.Itoa(i)
	})
	if err != nil {
		return nil, err
	}

	return &fairness.PromptValueOutput{Value: value}, nil
}

// RevealCommitment discloses the secret and key once the user's value is
// fixed
func (c *Console) RevealCommitment(ctx context.Context, input *fairness.RevealCommitmentInput) error {
	_, err := fmt.Fprintf(c.out, "My number is %d (KEY=%s).\n",
		input.Secret, hex.EncodeToString(input.Key))
	return err
}

// PickDie blocks until the user chooses one of the available dice
func (c *Console) PickDie(ctx context.Context, input *game.PickDieInput) (*game.PickDieOutput, error) {
	fmt.Fprintln(c.out, "Choose your dice:")

	index, err := c.promptChoice(input.Available, func(i int) string {
		return input.Dice[i].String()
	})
	if err != nil {
		return nil, err
	}

	return &game.PickDieOutput{Index: index}, nil
}

// Confirm asks a yes/no question and loops until it gets one
func (c *Console) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s (y/n): ", question)

		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

// promptChoice renders a numbered menu plus the exit and help options and
// loops until the user picks a listed value
func (c *Console) promptChoice(options []int, describe func(int) string) (int, error) {
	for {
		for _, i := range options {
			fmt.Fprintf(c.out, "%d - %s\n", i, describe(i))
		}
		fmt.Fprintln(c.out, "X - exit")
		fmt.Fprintln(c.out, "? - help")
		fmt.Fprint(c.out, "Your selection: ")

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(line) {
		case "x":
			return 0, ErrExit
		case "?":
			renderHelpTable(c.out, c.set)
			continue
		}

		value, err := strconv.Atoi(line)
		if err == nil {
			for _, i := range options {
				if value == i {
					return value, nil
				}
			}
		}

		fmt.Fprintln(c.out, "Invalid selection, try again.")
	}
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(c.scanner.Text()), nil
}
