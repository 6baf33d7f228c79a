package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	RegistryPath string // Absolute path of exchange_adapters.json
	ArtifactsDir string // Foundry out directory
	ArtifactPath string // Explicit artifact override, empty to search ArtifactsDir

	// Context settings
	Namespace   string
	NetworkName string // As given on the command line, resolved only when a deployment needs it
	ChainID     uint64 // Explicit chain ID, 0 to use the resolved network's

	// Execution settings
	Debug          bool
	NonInteractive bool
	DryRun         bool
	Yes            bool
	Timeout        time.Duration // 0 waits for the receipt indefinitely

	// Deployer key, hex encoded
	PrivateKey string

	// Resolved configurations
	FoundryConfig *FoundryConfig
}
