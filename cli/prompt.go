// Package cli provides terminal prompts for interactive binaries.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Terminal prompts the user through promptui.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminal returns a Terminal bound to the process's stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Line reads one line of input. Ctrl-D and Ctrl-C are reported as io.EOF.
func (t *Terminal) Line(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}

	line, err := prompt.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}

// Confirm asks a yes/no question. Answering no is not an error.
func (t *Terminal) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Select lets the user pick one of choices and returns it.
func (t *Terminal) Select(label string, choices []string) (string, error) {
	sel := promptui.Select{
		Label:  label,
		Items:  choices,
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}

	_, choice, err := sel.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}

	return choice, err
}
