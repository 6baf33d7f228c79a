package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

// loadEnvFiles loads .env files from the project root for variable expansion.
// Variables already present in the environment are not overridden.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig loads and parses foundry.toml. A project without foundry.toml
// gets an empty configuration.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	loadEnvFiles(projectRoot)

	cfg := &config.FoundryConfig{
		Profile:      make(map[string]config.ProfileConfig),
		RpcEndpoints: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(foundryPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}
	if cfg.RpcEndpoints == nil {
		cfg.RpcEndpoints = make(map[string]string)
	}
	if cfg.Profile == nil {
		cfg.Profile = make(map[string]config.ProfileConfig)
	}

	for name, url := range cfg.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for name, profile := range cfg.Profile {
		if profile.Deployer != nil {
			profile.Deployer.PrivateKey = os.ExpandEnv(profile.Deployer.PrivateKey)
			cfg.Profile[name] = profile
		}
	}

	return cfg, nil
}

// profileFor returns the profile for a namespace, falling back to "default"
func profileFor(cfg *config.FoundryConfig, namespace string) config.ProfileConfig {
	if profile, ok := cfg.Profile[namespace]; ok {
		return profile
	}
	return cfg.Profile["default"]
}
