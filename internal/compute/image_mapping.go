package compute

// ImagePresets maps short preset names to full Azure image URNs
var ImagePresets = map[string]string{
	"windows-11":   "MicrosoftWindowsDesktop:windows-11:win11-23h2-pro:latest",
	"windows-10":   "MicrosoftWindowsDesktop:Windows-10:win10-22h2-pro:latest",
	"server-2022":  "MicrosoftWindowsServer:WindowsServer:2022-datacenter-azure-edition:latest",
	"ubuntu":       "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
	"ubuntu-24.04": "Canonical:ubuntu-24_04-lts:server:latest",
	"debian":       "Debian:debian-12:12-gen2:latest",
}

// GetImagePreset returns the Azure image URN for a given preset name
func GetImagePreset(name string) (string, bool) {
	urn, exists := ImagePresets[name]
	return urn, exists
}

// ResolveImage returns the Azure image URN for a preset name. Unknown names
// are returned unchanged so raw URNs pass straight through.
func ResolveImage(name string) string {
	if urn, exists := ImagePresets[name]; exists {
		return urn
	}
	return name
}
