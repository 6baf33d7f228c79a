package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/artifacts"
	"github.com/trebuchet-org/adapter-deploy/internal/domain"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

var errNoCodeAfterDeploy = errors.New("no contract code after deployment")

// Backend is the node access the deployer needs
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// DialFunc connects to an RPC endpoint. The returned func releases the connection.
type DialFunc func(ctx context.Context, rpcURL string) (Backend, func(), error)

// DialEthClient connects with ethclient
func DialEthClient(ctx context.Context, rpcURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return client, client.Close, nil
}

// DeployerAdapter deploys contracts from Foundry artifacts with a private key sender
type DeployerAdapter struct {
	artifacts  *artifacts.Loader
	privateKey string
	timeout    time.Duration
	dial       DialFunc
	log        *slog.Logger
}

// NewDeployerAdapter creates a new deployer adapter
func NewDeployerAdapter(cfg *config.RuntimeConfig, loader *artifacts.Loader, log *slog.Logger) *DeployerAdapter {
	return &DeployerAdapter{
		artifacts:  loader,
		privateKey: cfg.PrivateKey,
		timeout:    cfg.Timeout,
		dial:       DialEthClient,
		log:        log.With("component", "Deployer"),
	}
}

// WithDialer replaces the RPC dialer
func (d *DeployerAdapter) WithDialer(dial DialFunc) *DeployerAdapter {
	d.dial = dial
	return d
}

// session holds everything prepared before a transaction is sent
type session struct {
	backend  Backend
	release  func()
	key      *ecdsa.PrivateKey
	sender   common.Address
	chainID  *big.Int
	artifact *artifacts.Artifact
	args     []any
}

func (d *DeployerAdapter) prepare(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (*session, error) {
	key, err := parsePrivateKey(d.privateKey)
	if err != nil {
		return nil, err
	}

	artifact, err := d.artifacts.Load(adapter.Contract)
	if err != nil {
		return nil, err
	}

	args, err := ConvertArgs(artifact.ABI.Constructor.Inputs, adapter.Args)
	if err != nil {
		return nil, err
	}

	backend, release, err := d.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, err
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		release()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != network.ChainID {
		release()
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, network.ChainID, chainID.Uint64())
	}

	return &session{
		backend:  backend,
		release:  release,
		key:      key,
		sender:   crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		artifact: artifact,
		args:     args,
	}, nil
}

// Deploy sends the creation transaction and blocks until the contract is mined
func (d *DeployerAdapter) Deploy(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (*domain.DeployResult, error) {
	s, err := d.prepare(ctx, network, adapter)
	if err != nil {
		return nil, err
	}
	defer s.release()

	auth, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	address, tx, _, err := bind.DeployContract(auth, s.artifact.ABI, s.artifact.Bytecode, s.backend, s.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment: %w", err)
	}
	d.log.Info("deployment sent",
		"contract", adapter.Contract,
		"tx", tx.Hash().Hex(),
		"address", address.Hex(),
		"from", s.sender.Hex(),
	)

	waitCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, s.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("deployment %s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}

	code, err := s.backend.CodeAt(waitCtx, receipt.ContractAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return nil, errNoCodeAfterDeploy
	}

	return &domain.DeployResult{
		Address:     receipt.ContractAddress.Hex(),
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
		Deployer:    s.sender.Hex(),
	}, nil
}

// Predict computes the address the next deployment from the configured key would get
func (d *DeployerAdapter) Predict(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (*domain.DeployResult, error) {
	s, err := d.prepare(ctx, network, adapter)
	if err != nil {
		return nil, err
	}
	defer s.release()

	nonce, err := s.backend.PendingNonceAt(ctx, s.sender)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	return &domain.DeployResult{
		Address:   crypto.CreateAddress(s.sender, nonce).Hex(),
		Deployer:  s.sender.Hex(),
		Predicted: true,
	}, nil
}

func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, domain.ErrNoDeployerKey
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		// Don't echo the key back
		return nil, errors.New("invalid deployer private key")
	}
	return key, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*DeployerAdapter)(nil)
