package main

import (
	"errors"
	"fmt"
	"os"

	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps configuration mistakes to 2 so build scripts can tell them
// apart from filesystem or output failures.
func exitCode(err error) int {
	var (
		invalid    *themeerrors.InvalidConfigurationError
		parse      *themeerrors.ParseError
		validation *themeerrors.ValidationError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &parse), errors.As(err, &validation):
		return exitConfig
	default:
		return exitFailure
	}
}
