// Package console is the interactive menu in front of core.Service. It owns
// all prompting and printing; every record operation goes through the
// service.
package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/0xRadioAc7iv/go-employees/core"
	"github.com/0xRadioAc7iv/go-employees/internal/utils"
)

const (
	ChoiceAdd = iota + 1
	ChoiceDisplayAll
	ChoiceSearch
	ChoiceUpdate
	ChoiceDelete
	ChoiceExit
)

// Words accepted at the menu prompt in place of a number. "search 42" and
// "3 42" are the same request.
var quickCommands = map[string]int{
	"add":     ChoiceAdd,
	"list":    ChoiceDisplayAll,
	"display": ChoiceDisplayAll,
	"search":  ChoiceSearch,
	"update":  ChoiceUpdate,
	"delete":  ChoiceDelete,
	"exit":    ChoiceExit,
	"quit":    ChoiceExit,
}

type Console struct {
	svc    *core.Service
	in     LineReader
	out    io.Writer
	logger *slog.Logger

	success *color.Color
	failure *color.Color
	notice  *color.Color
}

type Option func(*Console)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithColor forces colored status lines on or off. By default fatih/color
// decides based on whether stdout is a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		for _, col := range []*color.Color{c.success, c.failure, c.notice} {
			if enabled {
				col.EnableColor()
			} else {
				col.DisableColor()
			}
		}
	}
}

func New(svc *core.Service, in LineReader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		svc:     svc,
		in:      in,
		out:     out,
		logger:  slog.New(slog.DiscardHandler),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run shows the menu until the user picks Exit or input ends. Errors from
// record operations are printed and never end the loop.
func (c *Console) Run() error {
	for {
		c.printMenu()

		choice, arg, err := c.readChoice()
		if err == nil && choice != ChoiceExit {
			err = c.dispatch(choice, arg)
			if err == nil {
				continue
			}
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		fmt.Fprintln(c.out, "Exiting program...")
		return nil
	}
}

func (c *Console) dispatch(choice int, arg string) error {
	switch choice {
	case ChoiceAdd:
		return c.add()
	case ChoiceDisplayAll:
		return c.displayAll()
	case ChoiceSearch:
		return c.search(arg)
	case ChoiceUpdate:
		return c.update(arg)
	case ChoiceDelete:
		return c.delete(arg)
	}
	return nil
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "====== Employee Management System ======")
	fmt.Fprintln(c.out, "1. Add Employee")
	fmt.Fprintln(c.out, "2. Display All Employees")
	fmt.Fprintln(c.out, "3. Search Employee by ID")
	fmt.Fprintln(c.out, "4. Update Employee")
	fmt.Fprintln(c.out, "5. Delete Employee")
	fmt.Fprintln(c.out, "6. Exit")
}

func (c *Console) printQuickHelp() {
	fmt.Fprint(c.out, `
Enter a menu number, or one of:
  add                 same as 1
  list                same as 2
  search <id>         same as 3, skips the ID prompt
  update <id>         same as 4, skips the ID prompt
  delete <id>         same as 5, skips the ID prompt
  exit                same as 6
`)
}

// readChoice prompts until it gets a menu choice. arg is the optional ID
// typed after a quick command.
func (c *Console) readChoice() (int, string, error) {
	for {
		line, err := c.in.Prompt("Enter your choice: ")
		if err != nil {
			return 0, "", err
		}

		cmd, key, _, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			c.failure.Fprintln(c.out, "Invalid input. Please enter a valid integer.")
			continue
		}

		if n, err := strconv.Atoi(cmd); err == nil {
			if n < ChoiceAdd || n > ChoiceExit {
				c.failure.Fprintf(c.out, "Input must be between %d and %d. Try again.\n", ChoiceAdd, ChoiceExit)
				continue
			}
			return n, key, nil
		}

		name := strings.ToLower(cmd)
		if name == "help" {
			c.printQuickHelp()
			continue
		}
		if n, ok := quickCommands[name]; ok {
			return n, key, nil
		}

		c.failure.Fprintln(c.out, "Invalid input. Please enter a valid integer.")
	}
}

// promptUntilValid re-prompts until parse accepts the line. Only input
// errors (including io.EOF) are returned.
func promptUntilValid[T any](c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := c.in.Prompt(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		c.failure.Fprintf(c.out, "%v. Try again.\n", err)
	}
}

// readID uses arg when it is a valid ID and prompts otherwise.
func (c *Console) readID(prompt, arg string) (int, error) {
	if arg != "" {
		id, err := core.ParseID(arg)
		if err == nil {
			return id, nil
		}
		c.failure.Fprintf(c.out, "%v.\n", err)
	}

	return promptUntilValid(c, prompt, core.ParseID)
}

func amountParser(field string) func(string) (float64, error) {
	return func(raw string) (float64, error) {
		return core.ParseAmount(field, raw)
	}
}

func clockTimeParser(field string) func(string) (string, error) {
	return func(raw string) (string, error) {
		return core.ParseClockTime(field, raw)
	}
}

func (c *Console) reportError(err error) {
	switch {
	case errors.Is(err, core.ErrStorageWrite):
		c.logger.Error("saving employees failed", "err", err)
		c.failure.Fprintf(c.out, "Could not save employees: %v\n", err)
	case errors.Is(err, core.ErrStorageRead):
		c.logger.Error("loading employees failed", "err", err)
		c.failure.Fprintf(c.out, "Could not read employees: %v\n", err)
	default:
		c.failure.Fprintf(c.out, "Error: %v\n", err)
	}
}
