package cmd

import (
	"errors"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

// Exit codes per error kind, so scripts can react to auth vs transport
// problems.
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
	exitNetwork = 3
	exitRevert  = 4
	exitDecode  = 5
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrConfig),
		errors.Is(err, domain.ErrUsage),
		errors.Is(err, domain.ErrUnknownProvider),
		errors.Is(err, domain.ErrAliasNotFound):
		return exitConfig
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrRPC):
		return exitNetwork
	case errors.Is(err, domain.ErrContractRevert):
		return exitRevert
	case errors.Is(err, domain.ErrDecode):
		return exitDecode
	default:
		return exitFailure
	}
}
