package blockchain

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/artifacts"
	"github.com/trebuchet-org/adapter-deploy/internal/domain"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

// simulatedChainID is the chain ID of go-ethereum's simulated backend
const simulatedChainID = 1337

type testChain struct {
	backend *simulated.Backend
	key     string
	sender  common.Address
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sender := crypto.PubkeyToAddress(key.PublicKey)

	balance := new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil)
	backend := simulated.NewBackend(types.GenesisAlloc{
		sender: {Balance: balance},
	})
	t.Cleanup(func() { _ = backend.Close() })

	return &testChain{
		backend: backend,
		key:     hex.EncodeToString(crypto.FromECDSA(key)),
		sender:  sender,
	}
}

// autoCommit mines blocks until the returned func is called
func (c *testChain) autoCommit() func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.backend.Commit()
			}
		}
	}()
	return func() { close(done) }
}

func (c *testChain) dialer() DialFunc {
	return func(ctx context.Context, rpcURL string) (Backend, func(), error) {
		return c.backend.Client(), func() {}, nil
	}
}

func newTestDeployer(t *testing.T, chain *testChain, privateKey string) *DeployerAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{
		PrivateKey: privateKey,
		Timeout:    30 * time.Second,
	}
	loader := artifacts.NewLoader(filepath.Join("..", "artifacts", "testdata", "out"), "")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDeployerAdapter(cfg, loader, log).WithDialer(chain.dialer())
}

func TestDeployerAdapter(t *testing.T) {
	ctx := context.Background()
	network := domain.NetworkContext{ChainID: simulatedChainID, Name: "simulated"}
	adapter := domain.PancakeswapV2Adapter()

	t.Run("deploys with fixed constructor arguments", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, chain.key)

		stop := chain.autoCommit()
		result, err := deployer.Deploy(ctx, network, adapter)
		stop()
		require.NoError(t, err)

		assert.Equal(t, crypto.CreateAddress(chain.sender, 0).Hex(), result.Address)
		assert.Equal(t, chain.sender.Hex(), result.Deployer)
		assert.False(t, result.Predicted)
		assert.NotZero(t, result.GasUsed)

		client := chain.backend.Client()
		code, err := client.CodeAt(ctx, common.HexToAddress(result.Address), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, code)

		// Creation data is bytecode followed by the ABI-encoded arguments
		tx, _, err := client.TransactionByHash(ctx, common.HexToHash(result.TxHash))
		require.NoError(t, err)
		artifact, err := artifacts.NewLoader(filepath.Join("..", "artifacts", "testdata", "out"), "").Load(adapter.Contract)
		require.NoError(t, err)
		unpacked, err := artifact.ABI.Constructor.Inputs.Unpack(tx.Data()[len(artifact.Bytecode):])
		require.NoError(t, err)
		require.Len(t, unpacked, 4)
		assert.Equal(t, "Pancakeswap V2", unpacked[0])
		assert.Equal(t, common.HexToAddress("0x02a84c1b3BBD7401a5f7fa98a384EBC70bB5749E"), unpacked[1])
		assert.Equal(t, int64(25), unpacked[2].(*big.Int).Int64())
		assert.Equal(t, int64(215000), unpacked[3].(*big.Int).Int64())
	})

	t.Run("predict matches the deployed address", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, "0x"+chain.key)

		predicted, err := deployer.Predict(ctx, network, adapter)
		require.NoError(t, err)
		assert.True(t, predicted.Predicted)
		assert.Empty(t, predicted.TxHash)

		stop := chain.autoCommit()
		deployed, err := deployer.Deploy(ctx, network, adapter)
		stop()
		require.NoError(t, err)
		assert.Equal(t, predicted.Address, deployed.Address)
	})

	t.Run("chain id mismatch", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, chain.key)

		_, err := deployer.Deploy(ctx, domain.NetworkContext{ChainID: 56}, adapter)
		assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
	})

	t.Run("missing key", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, "")

		_, err := deployer.Deploy(ctx, network, adapter)
		assert.ErrorIs(t, err, domain.ErrNoDeployerKey)
	})

	t.Run("invalid key is not echoed", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, "0xnotakey")

		_, err := deployer.Deploy(ctx, network, adapter)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "notakey")
	})

	t.Run("missing artifact", func(t *testing.T) {
		chain := newTestChain(t)
		deployer := newTestDeployer(t, chain, chain.key)

		_, err := deployer.Deploy(ctx, network, domain.AdapterSpec{Contract: "UniswapV3Adapter"})
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})
}
