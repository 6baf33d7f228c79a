package domain

import (
	"fmt"
	"math/big"
)

// ArgKind is the logical kind of a constructor argument before ABI conversion
type ArgKind string

const (
	ArgString  ArgKind = "string"
	ArgAddress ArgKind = "address"
	ArgUint    ArgKind = "uint"
)

// ConstructorArg is a named constructor argument passed through to the contract unchanged
type ConstructorArg struct {
	Name  string
	Kind  ArgKind
	Value string
}

// AdapterSpec describes an exchange adapter contract and the arguments it is deployed with
type AdapterSpec struct {
	// Label is the display name recorded in logs
	Label string
	// Contract is the compiled contract name (artifact lookup key)
	Contract string
	Args     []ConstructorArg
}

const (
	PancakeswapV2Label  = "Pancakeswap V2"
	PancakeswapV2Router = "0x02a84c1b3BBD7401a5f7fa98a384EBC70bB5749E"
	PancakeswapV2Fee    = 25
	PancakeswapV2Gas    = 215000
)

// PancakeswapV2Adapter returns the Pancakeswap V2 adapter descriptor.
// The arguments are the same on every network.
func PancakeswapV2Adapter() AdapterSpec {
	return AdapterSpec{
		Label:    PancakeswapV2Label,
		Contract: "PancakeswapAdapter",
		Args: []ConstructorArg{
			{Name: "name", Kind: ArgString, Value: PancakeswapV2Label},
			{Name: "router", Kind: ArgAddress, Value: PancakeswapV2Router},
			{Name: "fee", Kind: ArgUint, Value: fmt.Sprint(PancakeswapV2Fee)},
			{Name: "swapGasEstimate", Kind: ArgUint, Value: fmt.Sprint(PancakeswapV2Gas)},
		},
	}
}

// Values returns the argument values in constructor order
func (s AdapterSpec) Values() []string {
	values := make([]string, len(s.Args))
	for i, arg := range s.Args {
		values[i] = arg.Value
	}
	return values
}

// DeployResult is the outcome of a contract deployment
type DeployResult struct {
	Address     string
	TxHash      string
	BlockNumber *big.Int
	GasUsed     uint64
	Deployer    string
	// Predicted is set when the address was computed without broadcasting
	Predicted bool
}
