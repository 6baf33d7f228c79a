package config

// FoundryConfig represents the parts of foundry.toml the deployer reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath  string          `toml:"src,omitempty"`
	OutPath  string          `toml:"out,omitempty"`
	Deployer *DeployerConfig `toml:"deployer,omitempty"`
}

// DeployerConfig is the optional [profile.<name>.deployer] section
type DeployerConfig struct {
	PrivateKey string `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	Registry   string `toml:"registry,omitempty"`
}

// OutDir returns the profile's artifact directory, defaulting to Foundry's "out"
func (p ProfileConfig) OutDir() string {
	if p.OutPath != "" {
		return p.OutPath
	}
	return "out"
}
