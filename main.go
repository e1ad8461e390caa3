package main

import (
	"os"

	"github.com/refrescante-ui/refrescante/cmd"
	"github.com/refrescante-ui/refrescante/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
