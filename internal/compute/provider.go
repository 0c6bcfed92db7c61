// Package compute provides the boundary to the external cloud CLI. All
// provisioning work happens inside the CLI subprocess; this package only
// assembles command lines and parses their JSON output.
package compute

import (
	"context"
	"errors"

	"github.com/spinup-sh/spinup/internal/types"
)

// Sentinel errors for the precondition failure taxonomy
var (
	// ErrCLINotFound indicates the cloud CLI binary is missing or broken
	ErrCLINotFound = errors.New("azure CLI not found (install it from https://aka.ms/azure-cli)")

	// ErrNotLoggedIn indicates there is no active CLI session
	ErrNotLoggedIn = errors.New("not logged in to Azure (run 'az login' first)")

	// ErrIdentityMissing indicates the account query succeeded but returned
	// no signed-in user name
	ErrIdentityMissing = errors.New("account query returned no signed-in user")
)

// Provider defines the interface for the external cloud CLI, one method per
// external operation
type Provider interface {
	// CheckCLI verifies the cloud CLI is installed and runnable
	CheckCLI(ctx context.Context) error

	// CurrentAccount returns the signed-in session identity
	CurrentAccount(ctx context.Context) (*types.Account, error)

	// CreateResourceGroup creates a named resource group in a region
	CreateResourceGroup(ctx context.Context, name, location string) error

	// DeleteResourceGroup deletes a resource group without waiting for
	// completion
	DeleteResourceGroup(ctx context.Context, name string) error

	// CreateInstance creates a new VM from the resolved configuration
	CreateInstance(ctx context.Context, config types.InstanceConfig) (*types.InstanceInfo, error)
}

// NewProvider creates the default Azure CLI backed provider
func NewProvider() Provider {
	return NewAzureCLIProvider()
}
