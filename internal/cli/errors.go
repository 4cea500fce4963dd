package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/backup"
	"github.com/mesh-intelligence/scratchbook/internal/intake"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// usageErr marks a failure caused by the invocation itself.
type usageErr struct{ err error }

func (e usageErr) Error() string { return e.err.Error() }
func (e usageErr) Unwrap() error { return e.err }

func userError(err error) error { return usageErr{err: err} }

// userErrors are the sentinels that mean the input was wrong rather than
// the system.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrInvalidData,
	types.ErrInvalidName,
	types.ErrInvalidURL,
	types.ErrInvalidContent,
	types.ErrInvalidFilter,
	types.ErrTableNotFound,
	backup.ErrUnknownMode,
	intake.ErrNoFrontImage,
}

// exitCode maps an error to exit 1 for user errors and 2 for everything
// else.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ue usageErr
	if errors.As(err, &ue) {
		return exitUserError
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	// cobra reports unknown subcommands and missing required flags as
	// plain errors.
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "required flag") {
		return exitUserError
	}
	return exitSysError
}

// exactArgs is cobra.ExactArgs with the failure classified as a user error.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return userError(err)
		}
		return nil
	}
}
