package blockchain

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/adapter-deploy/internal/domain"
)

// ConvertArgs converts constructor arguments to the Go values go-ethereum packs for the ABI inputs
func ConvertArgs(inputs abi.Arguments, args []domain.ConstructorArg) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("%w: constructor takes %d arguments, got %d",
			domain.ErrInvalidConstructorArg, len(inputs), len(args))
	}

	values := make([]any, len(args))
	for i, arg := range args {
		value, err := convertArg(inputs[i].Type, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %v", domain.ErrInvalidConstructorArg, arg.Name, inputs[i].Type.String(), err)
		}
		values[i] = value
	}
	return values, nil
}

func convertArg(t abi.Type, arg domain.ConstructorArg) (any, error) {
	if err := checkKind(t, arg.Kind); err != nil {
		return nil, err
	}

	switch t.T {
	case abi.StringTy:
		return arg.Value, nil
	case abi.AddressTy:
		if !common.IsHexAddress(arg.Value) {
			return nil, fmt.Errorf("invalid address %q", arg.Value)
		}
		return common.HexToAddress(arg.Value), nil
	case abi.BoolTy:
		return strconv.ParseBool(arg.Value)
	case abi.UintTy, abi.IntTy:
		return convertInteger(t, arg.Value)
	case abi.BytesTy:
		return hexutil.Decode(arg.Value)
	case abi.FixedBytesTy:
		raw, err := hexutil.Decode(arg.Value)
		if err != nil {
			return nil, err
		}
		if len(raw) > t.Size {
			return nil, fmt.Errorf("value is %d bytes, type holds %d", len(raw), t.Size)
		}
		fixed := reflect.New(t.GetType()).Elem()
		reflect.Copy(fixed, reflect.ValueOf(raw))
		return fixed.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported type")
	}
}

// checkKind rejects arguments whose declared kind can't describe the ABI type
func checkKind(t abi.Type, kind domain.ArgKind) error {
	ok := true
	switch kind {
	case domain.ArgAddress:
		ok = t.T == abi.AddressTy
	case domain.ArgUint:
		ok = t.T == abi.UintTy || t.T == abi.IntTy
	}
	if !ok {
		return fmt.Errorf("%s value for %s input", kind, t.String())
	}
	return nil
}

func convertInteger(t abi.Type, value string) (any, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", value)
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s out of range", value)
		}
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
		return nil, fmt.Errorf("%s out of range", value)
	}
	switch t.Size {
	case 8:
		return int8(n.Int64()), nil
	case 16:
		return int16(n.Int64()), nil
	case 32:
		return int32(n.Int64()), nil
	case 64:
		return n.Int64(), nil
	}
	return n, nil
}
