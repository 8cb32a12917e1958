package utils

import (
	"errors"
	"strings"

	"github.com/kballard/go-shellquote"
)

var ErrEmptyCommand = errors.New("empty command")

// SplitStringIntoCommandAndArguments splits a prompt line using shell quoting
// rules. The first word is the command, the second the key, and everything
// after that is joined back into the value.
//
//	search 42            -> "search", "42", ""
//	add 7 "Jane Doe"     -> "add", "7", "Jane Doe"
func SplitStringIntoCommandAndArguments(line string) (cmd, key, value string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", "", err
	}

	if len(words) == 0 {
		return "", "", "", ErrEmptyCommand
	}

	cmd = words[0]
	if len(words) > 1 {
		key = words[1]
	}
	if len(words) > 2 {
		value = strings.Join(words[2:], " ")
	}

	return cmd, key, value, nil
}
