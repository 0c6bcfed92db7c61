// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvLocation overrides the default Azure region
	EnvLocation = "SPINUP_LOCATION"

	// EnvSize overrides the default VM size SKU
	EnvSize = "SPINUP_SIZE"

	// EnvImage overrides the default image preset or URN
	EnvImage = "SPINUP_IMAGE"

	// EnvUsername overrides the default admin account name
	EnvUsername = "SPINUP_USERNAME"
)

// Built-in defaults applied when neither a flag nor an environment variable
// supplies a value
const (
	// DefaultLocation is the Azure region VMs are created in
	DefaultLocation = "eastus"

	// DefaultSize is the VM size SKU
	DefaultSize = "Standard_D2s_v3"

	// DefaultImage is the image preset key resolved before provisioning
	DefaultImage = "windows-11"

	// DefaultUsername is the admin account name on the created VM
	DefaultUsername = "azureuser"
)
