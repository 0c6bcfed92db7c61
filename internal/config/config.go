// Package config implements the argument resolution pipeline that turns raw
// command-line tokens into a fully populated instance configuration.
//
// Resolution runs as a fixed sequence of pure steps: defaults, token
// overrides, image preset resolution, OS inference, name defaulting,
// resource-group defaulting, password defaulting. The parser is lenient by
// policy: unrecognized keys and tokens without an =value are ignored, never
// reported.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spinup-sh/spinup/internal/compute"
	"github.com/spinup-sh/spinup/internal/constants"
	"github.com/spinup-sh/spinup/internal/types"
)

// Recognized --key=value keys
const (
	KeyLocation      = "location"
	KeyName          = "name"
	KeySize          = "size"
	KeyImage         = "image"
	KeyResourceGroup = "resourceGroup"
	KeyUsername      = "username"
	KeyPassword      = "password"
)

// maxWindowsNameLength is the Azure limit on Windows computer names
const maxWindowsNameLength = 15

var recognizedKeys = map[string]struct{}{
	KeyLocation:      {},
	KeyName:          {},
	KeySize:          {},
	KeyImage:         {},
	KeyResourceGroup: {},
	KeyUsername:      {},
	KeyPassword:      {},
}

// Defaults holds the pre-override values the resolver starts from
type Defaults struct {
	Location string
	Size     string
	Image    string
	Username string
}

// DefaultsFromEnv returns the built-in defaults with any SPINUP_*
// environment overrides applied. Precedence overall is flag > env > built-in.
func DefaultsFromEnv() Defaults {
	return Defaults{
		Location: envOrDefault(constants.EnvLocation, constants.DefaultLocation),
		Size:     envOrDefault(constants.EnvSize, constants.DefaultSize),
		Image:    envOrDefault(constants.EnvImage, constants.DefaultImage),
		Username: envOrDefault(constants.EnvUsername, constants.DefaultUsername),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Resolve turns raw command-line tokens into a fully populated configuration.
// It never fails on user input; the only error source is the entropy pool
// backing credential generation.
func Resolve(tokens []string, defaults Defaults) (types.InstanceConfig, error) {
	cfg := applyDefaults(defaults)
	cfg = applyOverrides(cfg, parseOverrides(tokens))
	cfg.Image = compute.ResolveImage(cfg.Image)
	cfg.OSFamily = InferOSFamily(cfg.Image)

	if cfg.Name == "" {
		cfg.Name = defaultName(cfg.OSFamily, time.Now())
	}
	if cfg.ResourceGroup == "" {
		cfg.ResourceGroup = defaultResourceGroup()
	}
	if cfg.Password == "" {
		password, err := GeneratePassword()
		if err != nil {
			return types.InstanceConfig{}, fmt.Errorf("generating admin password: %w", err)
		}
		cfg.Password = password
	}

	return cfg, nil
}

// parseOverrides extracts recognized --key=value overrides from raw tokens.
// Everything else is ignored by policy.
func parseOverrides(tokens []string) map[string]string {
	overrides := make(map[string]string)
	for _, token := range tokens {
		if !strings.HasPrefix(token, "--") {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimPrefix(token, "--"), "=")
		if !ok {
			continue
		}
		if _, known := recognizedKeys[key]; !known {
			continue
		}
		overrides[key] = value
	}
	return overrides
}

func applyDefaults(defaults Defaults) types.InstanceConfig {
	return types.InstanceConfig{
		Location: defaults.Location,
		Size:     defaults.Size,
		Image:    defaults.Image,
		Username: defaults.Username,
	}
}

func applyOverrides(cfg types.InstanceConfig, overrides map[string]string) types.InstanceConfig {
	for key, value := range overrides {
		switch key {
		case KeyLocation:
			cfg.Location = value
		case KeyName:
			cfg.Name = value
		case KeySize:
			cfg.Size = value
		case KeyImage:
			cfg.Image = value
		case KeyResourceGroup:
			cfg.ResourceGroup = value
		case KeyUsername:
			cfg.Username = value
		case KeyPassword:
			cfg.Password = value
		}
	}
	return cfg
}

// InferOSFamily classifies the resolved image identifier. A case-insensitive
// "windows" or "win" substring means Windows; everything else is Linux.
func InferOSFamily(image string) types.OSFamily {
	lowered := strings.ToLower(image)
	if strings.Contains(lowered, "win") {
		return types.OSFamilyWindows
	}
	return types.OSFamilyLinux
}

// defaultName generates an instance name with a time-based uniqueness
// component. Windows machine names are capped at 15 characters, so the
// Windows scheme uses a short fixed prefix.
func defaultName(family types.OSFamily, now time.Time) string {
	if family == types.OSFamilyWindows {
		return fmt.Sprintf("vm-%d", now.Unix())
	}
	return fmt.Sprintf("spinup-vm-%d", now.Unix())
}

// defaultResourceGroup generates a resource group name with a random
// uniqueness component
func defaultResourceGroup() string {
	return fmt.Sprintf("spinup-rg-%s", uuid.NewString()[:8])
}
