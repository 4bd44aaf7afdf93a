package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrInvalidMode is returned for a mode other than simulation or interactive.
	ErrInvalidMode = errors.New("invalid mode: use 's' or 'i'")
	// ErrInvalidSeed is returned for a seed that is not an integer. It is a
	// warning: the game falls back to an entropy seed.
	ErrInvalidSeed = errors.New("invalid seed, a random one will be used")
)

// Mode codes accepted by AskMode.
const (
	ModeSimulation  = "s"
	ModeInteractive = "i"
)

// Prompter asks the startup questions on a line-based terminal.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	palette Palette
}

// NewPrompter creates a prompter. Pass the same *bufio.Reader to the console
// display so no buffered input is lost between the two.
func NewPrompter(in io.Reader, out io.Writer, p Palette) *Prompter {
	return &Prompter{in: bufferedReader(in), out: out, palette: p}
}

// AskMode asks for simulation or interactive mode. An empty answer selects
// simulation.
func (p *Prompter) AskMode() (interactive bool, err error) {
	fmt.Fprintf(p.out, "%sAvailable modes:%s [s] Simulation  |  [i] Interactive\n", p.palette.Bold, p.palette.Reset)
	answer, err := p.ask("Choose mode (s/i): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "", ModeSimulation:
		return false, nil
	case ModeInteractive:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidMode, answer)
	}
}

// AskSeed asks for an optional seed. An empty answer means no seed. A
// non-integer answer prints a warning and returns a nil seed with an error
// wrapping ErrInvalidSeed.
func (p *Prompter) AskSeed() (*int64, error) {
	answer, err := p.ask("Optional seed (enter for random): ")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}

	seed, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		fmt.Fprintf(p.out, "%s%s%s\n", p.palette.Warning, "Invalid seed, a random one will be used.", p.palette.Reset)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeed, answer)
	}
	return &seed, nil
}

// AskNames asks for both player names, defaulting to the given names.
func (p *Prompter) AskNames(default1, default2 string) (string, string, error) {
	n1, err := p.ask("Player 1 name: ")
	if err != nil {
		return "", "", err
	}
	n2, err := p.ask("Player 2 name: ")
	if err != nil {
		return "", "", err
	}
	if n1 == "" {
		n1 = default1
	}
	if n2 == "" {
		n2 = default2
	}
	return n1, n2, nil
}

// ask prints a question and returns the trimmed answer. End of input counts
// as an empty answer.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
