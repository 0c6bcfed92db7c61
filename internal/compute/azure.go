package compute

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spinup-sh/spinup/internal/logger"
	"github.com/spinup-sh/spinup/internal/types"
)

// azureBinary is the name of the external CLI executable
const azureBinary = "az"

// AzureCLIProvider implements the Provider interface by shelling out to the
// az binary
type AzureCLIProvider struct {
	// run executes the CLI with argument-vector form; swapped in tests
	run func(ctx context.Context, args ...string) ([]byte, error)

	// runShell executes a full command line through the shell; the VM
	// creation command is assembled as a single string so the escaped
	// credential is interpolated exactly as written
	runShell func(ctx context.Context, cmdline string) ([]byte, error)
}

var _ Provider = &AzureCLIProvider{}

// NewAzureCLIProvider creates a provider that invokes the real az binary
func NewAzureCLIProvider() *AzureCLIProvider {
	return &AzureCLIProvider{
		run:      runAzure,
		runShell: runShell,
	}
}

func runAzure(ctx context.Context, args ...string) ([]byte, error) {
	logger.Debugf("exec: %s %s", azureBinary, strings.Join(args, " "))
	// #nosec G204 -- arguments are assembled from resolved configuration
	out, err := exec.CommandContext(ctx, azureBinary, args...).Output()
	if err != nil {
		return nil, commandError(err)
	}
	return out, nil
}

func runShell(ctx context.Context, cmdline string) ([]byte, error) {
	logger.Debugf("exec: sh -c %q", cmdline)
	// #nosec G204 -- the command line is assembled from resolved
	// configuration with the credential escaped
	out, err := exec.CommandContext(ctx, "sh", "-c", cmdline).Output()
	if err != nil {
		return nil, commandError(err)
	}
	return out, nil
}

// commandError surfaces the CLI's stderr diagnostics when available
func commandError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%s: %w", strings.TrimSpace(string(exitErr.Stderr)), err)
	}
	return err
}

// CheckCLI implements Provider.CheckCLI. Any successful invocation signals
// availability.
func (p *AzureCLIProvider) CheckCLI(ctx context.Context) error {
	if _, err := p.run(ctx, "version", "--output", "json"); err != nil {
		return fmt.Errorf("%w: %v", ErrCLINotFound, err)
	}
	return nil
}

// CurrentAccount implements Provider.CurrentAccount
func (p *AzureCLIProvider) CurrentAccount(ctx context.Context) (*types.Account, error) {
	out, err := p.run(ctx, "account", "show", "--output", "json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotLoggedIn, err)
	}

	var account types.Account
	if err := json.Unmarshal(out, &account); err != nil {
		return nil, fmt.Errorf("parsing account query output: %w", err)
	}
	if account.User.Name == "" {
		return nil, ErrIdentityMissing
	}

	return &account, nil
}

// CreateResourceGroup implements Provider.CreateResourceGroup
func (p *AzureCLIProvider) CreateResourceGroup(ctx context.Context, name, location string) error {
	_, err := p.run(ctx, "group", "create", "--name", name, "--location", location, "--output", "json")
	if err != nil {
		return fmt.Errorf("creating resource group %s: %w", name, err)
	}
	return nil
}

// DeleteResourceGroup implements Provider.DeleteResourceGroup. The deletion
// runs in no-wait mode so callers are not blocked on teardown.
func (p *AzureCLIProvider) DeleteResourceGroup(ctx context.Context, name string) error {
	_, err := p.run(ctx, "group", "delete", "--name", name, "--yes", "--no-wait")
	if err != nil {
		return fmt.Errorf("deleting resource group %s: %w", name, err)
	}
	return nil
}

// CreateInstance implements Provider.CreateInstance
func (p *AzureCLIProvider) CreateInstance(ctx context.Context, config types.InstanceConfig) (*types.InstanceInfo, error) {
	out, err := p.runShell(ctx, BuildCreateVMCommand(config))
	if err != nil {
		return nil, fmt.Errorf("creating virtual machine %s: %w", config.Name, err)
	}

	var info types.InstanceInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("parsing VM creation output: %w", err)
	}

	return &info, nil
}

// BuildCreateVMCommand assembles the full VM creation command line. The
// admin password is the only value interpolated inside shell quotes, so it
// is the only value that gets escaped.
func BuildCreateVMCommand(config types.InstanceConfig) string {
	return fmt.Sprintf(
		`az vm create --resource-group %s --name %s --image %s --admin-username %s --admin-password "%s" --size %s --public-ip-sku Standard --nsg-rule %s --output json`,
		config.ResourceGroup,
		config.Name,
		config.Image,
		config.Username,
		EscapeCredential(config.Password),
		config.Size,
		config.OSFamily.InboundRule(),
	)
}

var credentialEscaper = strings.NewReplacer(`"`, `\"`, `$`, `\$`)

// EscapeCredential escapes literal double quotes and dollar signs so the
// credential survives interpolation into a double-quoted shell argument
func EscapeCredential(s string) string {
	return credentialEscaper.Replace(s)
}
