package main

import (
	"errors"
	"fmt"
	"os"

	"edsign/cmd/edsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrSignatureInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
