package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spinup-sh/spinup/internal/types"
)

func TestPrintPlan(t *testing.T) {
	cfg := types.InstanceConfig{
		Location:      "eastus",
		Name:          "vm-1756400000",
		Size:          "Standard_D2s_v3",
		Image:         "MicrosoftWindowsDesktop:windows-11:win11-23h2-pro:latest",
		ResourceGroup: "spinup-rg-deadbeef",
		Username:      "azureuser",
		Password:      "Xy7!abcDEF123456",
		OSFamily:      types.OSFamilyWindows,
	}

	var buf bytes.Buffer
	PrintPlan(&buf, cfg)

	out := buf.String()
	assert.Contains(t, out, "eastus")
	assert.Contains(t, out, "vm-1756400000")
	assert.Contains(t, out, "spinup-rg-deadbeef")
	assert.Contains(t, out, "windows")
	// The plan never shows the credential
	assert.NotContains(t, out, cfg.Password)
}

func TestPrintResultLinux(t *testing.T) {
	cfg := types.InstanceConfig{
		Username: "azureuser",
		Password: "Xy7!abcDEF123456",
		OSFamily: types.OSFamilyLinux,
	}
	info := &types.InstanceInfo{PublicIP: "20.30.40.50"}

	var buf bytes.Buffer
	PrintResult(&buf, cfg, info)

	out := buf.String()
	assert.Contains(t, out, "ssh azureuser@20.30.40.50")
	assert.Contains(t, out, "password: Xy7!abcDEF123456")
	assert.NotContains(t, out, "mstsc")
}

func TestPrintResultWindows(t *testing.T) {
	cfg := types.InstanceConfig{
		Username: "azureuser",
		Password: "Xy7!abcDEF123456",
		OSFamily: types.OSFamilyWindows,
	}
	info := &types.InstanceInfo{PublicIP: "20.30.40.50"}

	var buf bytes.Buffer
	PrintResult(&buf, cfg, info)

	out := buf.String()
	assert.Contains(t, out, "mstsc /v:20.30.40.50")
	assert.Contains(t, out, "username: azureuser")
	assert.NotContains(t, out, "ssh ")
}

func TestPrintPresets(t *testing.T) {
	var buf bytes.Buffer
	PrintPresets(&buf)

	out := buf.String()
	assert.Contains(t, out, "PRESET")
	assert.Contains(t, out, "ubuntu")
	assert.Contains(t, out, "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest")
	assert.Contains(t, out, "windows-11")
}
