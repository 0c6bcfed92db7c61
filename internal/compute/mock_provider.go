package compute

import (
	"context"

	"github.com/spinup-sh/spinup/internal/types"
)

// MockProvider is a scriptable implementation of the Provider interface for
// testing purposes. Each operation can be overridden with a func field; the
// default behavior is success. Calls records operation names in order.
type MockProvider struct {
	CheckCLIFunc            func(ctx context.Context) error
	CurrentAccountFunc      func(ctx context.Context) (*types.Account, error)
	CreateResourceGroupFunc func(ctx context.Context, name, location string) error
	DeleteResourceGroupFunc func(ctx context.Context, name string) error
	CreateInstanceFunc      func(ctx context.Context, config types.InstanceConfig) (*types.InstanceInfo, error)

	Calls []string
}

var _ Provider = &MockProvider{}

// CheckCLI implements Provider.CheckCLI
func (m *MockProvider) CheckCLI(ctx context.Context) error {
	m.Calls = append(m.Calls, "CheckCLI")
	if m.CheckCLIFunc != nil {
		return m.CheckCLIFunc(ctx)
	}
	return nil
}

// CurrentAccount implements Provider.CurrentAccount
func (m *MockProvider) CurrentAccount(ctx context.Context) (*types.Account, error) {
	m.Calls = append(m.Calls, "CurrentAccount")
	if m.CurrentAccountFunc != nil {
		return m.CurrentAccountFunc(ctx)
	}
	return &types.Account{
		SubscriptionName: "mock-subscription",
		SubscriptionID:   "00000000-0000-0000-0000-000000000000",
		User:             types.AccountUser{Name: "mock@example.com", Type: "user"},
	}, nil
}

// CreateResourceGroup implements Provider.CreateResourceGroup
func (m *MockProvider) CreateResourceGroup(ctx context.Context, name, location string) error {
	m.Calls = append(m.Calls, "CreateResourceGroup")
	if m.CreateResourceGroupFunc != nil {
		return m.CreateResourceGroupFunc(ctx, name, location)
	}
	return nil
}

// DeleteResourceGroup implements Provider.DeleteResourceGroup
func (m *MockProvider) DeleteResourceGroup(ctx context.Context, name string) error {
	m.Calls = append(m.Calls, "DeleteResourceGroup")
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// CreateInstance implements Provider.CreateInstance
func (m *MockProvider) CreateInstance(ctx context.Context, config types.InstanceConfig) (*types.InstanceInfo, error) {
	m.Calls = append(m.Calls, "CreateInstance")
	if m.CreateInstanceFunc != nil {
		return m.CreateInstanceFunc(ctx, config)
	}
	return &types.InstanceInfo{
		Location:      config.Location,
		PowerState:    "VM running",
		PrivateIP:     "10.0.0.4",
		PublicIP:      "203.0.113.10",
		ResourceGroup: config.ResourceGroup,
	}, nil
}
