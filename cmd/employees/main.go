package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
