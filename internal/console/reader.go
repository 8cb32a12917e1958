package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineReader shows a prompt and returns the line typed in response, without
// the trailing newline. It returns io.EOF once input is exhausted.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineReader reads lines from in and echoes prompts to out. It is used
// for piped input and in tests.
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *scannerReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// TerminalReader is a LineReader backed by liner, with line editing and
// history. Ctrl+C and Ctrl+D both end input.
type TerminalReader struct {
	state *liner.State
}

func NewTerminalReader() *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &TerminalReader{state: state}
}

func (t *TerminalReader) Prompt(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}

	return line, nil
}

func (t *TerminalReader) Close() error {
	return t.state.Close()
}
