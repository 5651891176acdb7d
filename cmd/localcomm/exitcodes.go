// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/config"
)

// Exit codes of the localcomm binary.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration file missing, malformed or invalid
	ExitDataError   = 3 // Graph generation failed
)

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, builder.ErrInvalidMixture), errors.Is(err, builder.ErrNeedRandSource):
		return ExitDataError
	default:
		return ExitError
	}
}
