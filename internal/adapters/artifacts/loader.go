package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/adapter-deploy/internal/domain"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

// Artifact is a compiled contract ready for deployment
type Artifact struct {
	ContractName    string
	Path            string
	ABI             abi.ABI
	Bytecode        []byte
	CompilerVersion string
}

// foundryArtifact is the subset of a Foundry artifact file we read
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object         string                     `json:"object"`
		LinkReferences map[string]json.RawMessage `json:"linkReferences"`
	} `json:"bytecode"`
	Metadata struct {
		Compiler struct {
			Version string `json:"version"`
		} `json:"compiler"`
	} `json:"metadata"`
}

// Loader finds and parses Foundry artifacts
type Loader struct {
	outDir   string
	override string
}

// NewLoader creates a loader searching outDir. A non-empty override path is used as-is.
func NewLoader(outDir, override string) *Loader {
	return &Loader{outDir: outDir, override: override}
}

// NewLoaderFromConfig creates a loader for the configured artifacts directory
func NewLoaderFromConfig(cfg *config.RuntimeConfig) *Loader {
	return NewLoader(cfg.ArtifactsDir, cfg.ArtifactPath)
}

// Load returns the artifact for a contract name
func (l *Loader) Load(contractName string) (*Artifact, error) {
	path := l.override
	if path == "" {
		var err error
		path, err = l.find(contractName)
		if err != nil {
			return nil, err
		}
	}
	return ParseFile(contractName, path)
}

// find locates <outDir>/<File>.sol/<Contract>.json, preferring <Contract>.sol
func (l *Loader) find(contractName string) (string, error) {
	preferred := filepath.Join(l.outDir, contractName+".sol", contractName+".json")
	if _, err := os.Stat(preferred); err == nil {
		return preferred, nil
	}

	matches, err := filepath.Glob(filepath.Join(l.outDir, "*", contractName+".json"))
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s in %s (run forge build)", domain.ErrArtifactNotFound, contractName, l.outDir)
	case 1:
		return matches[0], nil
	default:
		rel := make([]string, len(matches))
		for i, m := range matches {
			rel[i], _ = filepath.Rel(l.outDir, m)
		}
		return "", fmt.Errorf("multiple artifacts found for %s, set the artifact path explicitly:\n  - %s",
			contractName, strings.Join(rel, "\n  - "))
	}
}

// ParseFile reads and parses a Foundry artifact file
func ParseFile(contractName, path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI in %s: %w", path, err)
	}

	if len(raw.Bytecode.LinkReferences) > 0 {
		return nil, fmt.Errorf("%s requires linked libraries, which are not supported", contractName)
	}

	bytecode, err := hexutil.Decode(raw.Bytecode.Object)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("%s has no creation bytecode (abstract contract or interface?)", contractName)
	}

	return &Artifact{
		ContractName:    contractName,
		Path:            path,
		ABI:             parsed,
		Bytecode:        bytecode,
		CompilerVersion: raw.Metadata.Compiler.Version,
	}, nil
}
