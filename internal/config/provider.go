package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

const (
	// DataDirName holds the optional local config file
	DataDirName = ".adapter-deploy"

	// DefaultRegistryFile is the registry file name relative to the project root
	DefaultRegistryFile = "exchange_adapters.json"

	// EnvPrefix is the prefix for environment overrides (ADAPTER_DEPLOY_NETWORK, ...)
	EnvPrefix = "ADAPTER_DEPLOY"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Namespace:      v.GetString("namespace"),
		NetworkName:    v.GetString("network"),
		ChainID:        v.GetUint64("chain_id"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		DryRun:         v.GetBool("dry_run"),
		Yes:            v.GetBool("yes"),
		Timeout:        v.GetDuration("timeout"),
		ArtifactPath:   v.GetString("artifact"),
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig
	profile := profileFor(foundryConfig, cfg.Namespace)

	// Registry file: flag/env > profile > default
	registry := v.GetString("registry")
	if registry == "" && profile.Deployer != nil {
		registry = profile.Deployer.Registry
	}
	if registry == "" {
		registry = DefaultRegistryFile
	}
	cfg.RegistryPath = resolvePath(projectRoot, registry)

	artifactsDir := v.GetString("artifacts_dir")
	if artifactsDir == "" {
		artifactsDir = profile.OutDir()
	}
	cfg.ArtifactsDir = resolvePath(projectRoot, artifactsDir)
	if cfg.ArtifactPath != "" {
		cfg.ArtifactPath = resolvePath(projectRoot, cfg.ArtifactPath)
	}

	// Deployer key: flag/env > profile > PRIVATE_KEY
	cfg.PrivateKey = v.GetString("private_key")
	if cfg.PrivateKey == "" && profile.Deployer != nil {
		cfg.PrivateKey = profile.Deployer.PrivateKey
	}
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("PRIVATE_KEY")
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml.
// Outside a Foundry project the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("namespace", "default")
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.ProjectRoot, cfg.FoundryConfig)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
