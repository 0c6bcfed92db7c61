// Package launcher drives the end-to-end provisioning flow: prerequisite
// checks, resource group creation, VM creation and best-effort cleanup when
// VM creation fails.
package launcher

import (
	"context"
	"fmt"
	"io"

	"github.com/spinup-sh/spinup/internal/compute"
	"github.com/spinup-sh/spinup/internal/logger"
	"github.com/spinup-sh/spinup/internal/types"
)

// Launcher runs the provisioning sequence against a Provider
type Launcher struct {
	provider compute.Provider
	out      io.Writer
}

// New creates a Launcher writing progress lines to out
func New(provider compute.Provider, out io.Writer) *Launcher {
	return &Launcher{
		provider: provider,
		out:      out,
	}
}

// CheckPrerequisites verifies the cloud CLI is available and a session is
// active, returning the signed-in account. No resources are touched.
func (l *Launcher) CheckPrerequisites(ctx context.Context) (*types.Account, error) {
	if err := l.provider.CheckCLI(ctx); err != nil {
		return nil, err
	}

	account, err := l.provider.CurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(l.out, "🔑 Logged in as %s\n", account.User.Name)
	return account, nil
}

// Launch creates the resource group and the VM, in that order. If VM
// creation fails after the group was created, the group is deleted
// best-effort so no billable resources are left behind; the cleanup outcome
// never masks the original error.
func (l *Launcher) Launch(ctx context.Context, config types.InstanceConfig) (*types.InstanceInfo, error) {
	fmt.Fprintf(l.out, "🚀 Creating resource group %s in %s...\n", config.ResourceGroup, config.Location)
	if err := l.provider.CreateResourceGroup(ctx, config.ResourceGroup, config.Location); err != nil {
		return nil, err
	}
	fmt.Fprintf(l.out, "✅ Resource group %s ready\n", config.ResourceGroup)

	fmt.Fprintf(l.out, "🚀 Creating virtual machine %s (this can take a few minutes)...\n", config.Name)
	info, err := l.provider.CreateInstance(ctx, config)
	if err != nil {
		l.cleanup(ctx, config.ResourceGroup)
		return nil, err
	}
	fmt.Fprintf(l.out, "✅ Virtual machine %s is up\n", config.Name)

	return info, nil
}

// cleanup issues one fire-and-forget resource group deletion. Its own
// failure is logged, not escalated.
func (l *Launcher) cleanup(ctx context.Context, resourceGroup string) {
	fmt.Fprintf(l.out, "🧹 VM creation failed, deleting resource group %s...\n", resourceGroup)
	if err := l.provider.DeleteResourceGroup(ctx, resourceGroup); err != nil {
		logger.Warnf("cleanup of resource group %s failed: %v", resourceGroup, err)
	}
}
