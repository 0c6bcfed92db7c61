package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetImagePreset(t *testing.T) {
	tests := []struct {
		name       string
		preset     string
		wantExists bool
		wantURN    string
	}{
		{
			name:       "windows-11 exists",
			preset:     "windows-11",
			wantExists: true,
			wantURN:    "MicrosoftWindowsDesktop:windows-11:win11-23h2-pro:latest",
		},
		{
			name:       "windows-10 exists",
			preset:     "windows-10",
			wantExists: true,
			wantURN:    "MicrosoftWindowsDesktop:Windows-10:win10-22h2-pro:latest",
		},
		{
			name:       "server-2022 exists",
			preset:     "server-2022",
			wantExists: true,
			wantURN:    "MicrosoftWindowsServer:WindowsServer:2022-datacenter-azure-edition:latest",
		},
		{
			name:       "ubuntu exists",
			preset:     "ubuntu",
			wantExists: true,
			wantURN:    "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
		},
		{
			name:       "debian exists",
			preset:     "debian",
			wantExists: true,
			wantURN:    "Debian:debian-12:12-gen2:latest",
		},
		{
			name:       "non-existent preset",
			preset:     "gentoo",
			wantExists: false,
			wantURN:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urn, exists := GetImagePreset(tt.preset)
			assert.Equal(t, tt.wantExists, exists)
			assert.Equal(t, tt.wantURN, urn)
		})
	}
}

func TestResolveImagePassthrough(t *testing.T) {
	// Unknown names are treated as literal URNs and returned unchanged
	assert.Equal(t, "Publisher:Offer:Sku:1.2.3", ResolveImage("Publisher:Offer:Sku:1.2.3"))
	assert.Equal(t, ImagePresets["ubuntu"], ResolveImage("ubuntu"))
}
