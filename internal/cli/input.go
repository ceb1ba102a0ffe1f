package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"hanoi/internal/transport"
)

// ScannerReader reads lines from any reader and prints the prompt on its own line
type ScannerReader struct {
	input  *bufio.Scanner
	output io.Writer
}

func NewScannerReader(input io.Reader, output io.Writer) *ScannerReader {
	return &ScannerReader{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Reads a line synchronously
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprintln(r.output, prompt)
	if !r.input.Scan() {
		if err := r.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.input.Text(), nil
}

func (r *ScannerReader) Close() error {
	return nil
}

// ReadlineReader uses a line editor when attached to a terminal
type ReadlineReader struct {
	rl *readline.Instance
}

func NewReadlineReader(stdin io.ReadCloser, stdout io.Writer) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt + " ",
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt + " ")
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// NewLineReader picks the line editor for interactive terminals and plain scanning otherwise
func NewLineReader(stdin *os.File, stdout *os.File, plain bool) (transport.LineReader, error) {
	if plain || !IsInteractive(stdin, stdout) {
		return NewScannerReader(stdin, stdout), nil
	}
	return NewReadlineReader(stdin, stdout)
}

// IsInteractive reports whether both ends are terminals
func IsInteractive(stdin, stdout *os.File) bool {
	return term.IsTerminal(int(stdin.Fd())) && term.IsTerminal(int(stdout.Fd()))
}
