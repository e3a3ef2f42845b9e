package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	ExitSuccess      = 0
	ExitAnalysisFail = 1 // the soil report could not be read
	ExitError        = 2 // bad input or configuration
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errAnalysisFailed) {
			os.Exit(ExitAnalysisFail)
		}
		os.Exit(ExitError)
	}
}
