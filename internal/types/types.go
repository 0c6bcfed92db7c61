// Package types provides type definitions shared across the application
package types

// OSFamily is the two-valued OS classification inferred from the resolved
// image identifier. It is never supplied by the user directly.
type OSFamily string

const (
	// OSFamilyWindows covers all Windows desktop and server images
	OSFamilyWindows OSFamily = "windows"

	// OSFamilyLinux covers everything that is not Windows
	OSFamilyLinux OSFamily = "linux"
)

// InboundRule returns the network rule name opened on the VM for this OS
// family: RDP for Windows, SSH for everything else.
func (f OSFamily) InboundRule() string {
	if f == OSFamilyWindows {
		return "RDP"
	}
	return "SSH"
}

// InstanceConfig represents the fully resolved configuration for creating a
// new VM. It is constructed once per invocation and read-only thereafter.
type InstanceConfig struct {
	Location      string
	Name          string
	Size          string
	Image         string
	ResourceGroup string
	Username      string
	Password      string
	OSFamily      OSFamily
}

// Account represents the signed-in Azure CLI session as returned by the
// account query.
type Account struct {
	SubscriptionName string      `json:"name"`
	SubscriptionID   string      `json:"id"`
	User             AccountUser `json:"user"`
}

// AccountUser is the nested identity block of an Account.
type AccountUser struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// InstanceInfo represents a created VM as reported by the provider. Field
// tags match the JSON emitted by the VM creation command.
type InstanceInfo struct {
	ID            string `json:"id"`
	Location      string `json:"location"`
	PowerState    string `json:"powerState"`
	PrivateIP     string `json:"privateIpAddress"`
	PublicIP      string `json:"publicIpAddress"`
	ResourceGroup string `json:"resourceGroup"`
}
