package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrRegistryNotFound is returned when the adapter registry file doesn't exist
	ErrRegistryNotFound = errors.New("registry not found")

	// ErrInvalidRegistry is returned when the registry file is not a map of address lists
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrChainIDMismatch is returned when the RPC endpoint reports a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrArtifactNotFound is returned when a compiled contract artifact can't be found
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidConstructorArg is returned when a constructor argument can't be converted to its ABI type
	ErrInvalidConstructorArg = errors.New("invalid constructor argument")

	// ErrNoDeployerKey is returned when no private key is configured for broadcasting
	ErrNoDeployerKey = errors.New("no deployer key configured")
)

// NetworkNotFoundError reports an unknown network together with close matches
type NetworkNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e NetworkNotFoundError) Error() string {
	msg := fmt.Sprintf("network '%s' not found in foundry.toml [rpc_endpoints]", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e NetworkNotFoundError) Unwrap() error {
	return ErrNetworkNotFound
}
