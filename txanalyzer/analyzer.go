// Package txanalyzer decodes transactions and calldata offline against the
// embedded contract interfaces.
package txanalyzer

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/contractkit/abis"
	kitcommon "github.com/tranvictor/contractkit/common"
)

// maxDepth bounds how deep nested calls are decoded.
const maxDepth = 4

// Labeler names addresses. db.DefaultAddressDatabase is one.
type Labeler interface {
	GetName(addr string) string
}

type TxAnalyzer struct {
	labels      Labeler
	descriptors []*abis.Descriptor
}

// NewAnalyzer decodes against descriptors, tried in order, or every embedded
// descriptor when none are given. labels may be nil.
func NewAnalyzer(labels Labeler, descriptors ...*abis.Descriptor) *TxAnalyzer {
	if len(descriptors) == 0 {
		descriptors = abis.All()
	}
	return &TxAnalyzer{labels: labels, descriptors: descriptors}
}

func (self *TxAnalyzer) address(addr common.Address) Value {
	label := ""
	if self.labels != nil {
		label = self.labels.GetName(addr.Hex())
	}
	return Value{Value: addr.Hex(), Label: label}
}

func (self *TxAnalyzer) nonArrayParamAsValue(t abi.Type, value interface{}) Value {
	valueStr := ""
	switch t.T {
	case abi.StringTy:
		valueStr = value.(string)
	case abi.IntTy, abi.UintTy:
		valueStr = fmt.Sprintf("%d", value)
	case abi.BoolTy:
		valueStr = fmt.Sprintf("%t", value.(bool))
	case abi.AddressTy:
		return self.address(value.(common.Address))
	case abi.HashTy:
		valueStr = value.(common.Hash).Hex()
	case abi.BytesTy:
		valueStr = fmt.Sprintf("0x%s", common.Bytes2Hex(value.([]byte)))
	case abi.FixedBytesTy:
		word := make([]byte, reflect.TypeOf(value).Size())
		reflect.Copy(reflect.ValueOf(word), reflect.ValueOf(value))
		valueStr = fmt.Sprintf("0x%s", common.Bytes2Hex(word))
	case abi.FunctionTy:
		valueStr = fmt.Sprintf("0x%s", common.Bytes2Hex(value.([]byte)))
	default:
		valueStr = fmt.Sprintf("%v", value)
	}
	return Value{Value: valueStr}
}

func (self *TxAnalyzer) ParamAsTuple(t abi.Type, value interface{}) []ParamResult {
	result := []ParamResult{}
	realVal := reflect.Indirect(reflect.ValueOf(value))
	for i, field := range t.TupleElems {
		fieldVal := realVal.FieldByName(abi.ToCamelCase(t.TupleRawNames[i])).Interface()
		result = append(result, self.paramResult(t.TupleRawNames[i], *field, fieldVal))
	}
	return result
}

func (self *TxAnalyzer) ParamAsValues(t abi.Type, value interface{}) []Value {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy:
		realVal := reflect.ValueOf(value)
		result := []Value{}
		for i := 0; i < realVal.Len(); i++ {
			result = append(result, self.ParamAsValues(*t.Elem, realVal.Index(i).Interface())...)
		}
		return result
	default:
		return []Value{self.nonArrayParamAsValue(t, value)}
	}
}

func (self *TxAnalyzer) paramResult(name string, t abi.Type, value interface{}) ParamResult {
	switch {
	case t.T == abi.TupleTy:
		return ParamResult{Name: name, Type: t.TupleRawName, Tuple: self.ParamAsTuple(t, value)}
	case (t.T == abi.SliceTy || t.T == abi.ArrayTy) && t.Elem.T == abi.TupleTy:
		realVal := reflect.ValueOf(value)
		elems := []ParamResult{}
		for i := 0; i < realVal.Len(); i++ {
			elems = append(elems, self.paramResult(fmt.Sprintf("%s[%d]", name, i), *t.Elem, realVal.Index(i).Interface()))
		}
		return ParamResult{Name: name, Type: t.String(), Tuple: elems}
	default:
		return ParamResult{Name: name, Type: t.String(), Value: self.ParamAsValues(t, value)}
	}
}

func (self *TxAnalyzer) findMethod(data []byte) (*abis.Descriptor, *abi.Method, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("data is too short to hold a method id")
	}
	for _, d := range self.descriptors {
		parsed := d.ABI()
		if m, err := parsed.MethodById(data); err == nil {
			return d, m, nil
		}
	}
	return nil, nil, fmt.Errorf("no known method with id %#x", data[:4])
}

// AnalyzeMethodCall decodes data with the first descriptor that knows its
// method id.
func (self *TxAnalyzer) AnalyzeMethodCall(data []byte) (contract string, method string, params []ParamResult, err error) {
	d, m, err := self.findMethod(data)
	if err != nil {
		return "", "", []ParamResult{}, err
	}
	ps, err := m.Inputs.UnpackValues(data[4:])
	if err != nil {
		return d.Name(), m.Name, []ParamResult{}, err
	}
	params = []ParamResult{}
	for i, input := range m.Inputs {
		params = append(params, self.paramResult(input.Name, input.Type, ps[i]))
	}
	return d.Name(), m.Name, params, nil
}

func (self *TxAnalyzer) analyzeFunctionCall(value *big.Int, destination string, data []byte, depth int) *FunctionCall {
	fc := &FunctionCall{
		Destination: self.address(common.HexToAddress(destination)),
		Value:       value,
	}
	var err error
	fc.Contract, fc.Method, fc.Params, err = self.AnalyzeMethodCall(data)
	if err != nil {
		fc.Error = fmt.Sprintf("couldn't decode bytes data: %s", err)
		return fc
	}
	if depth >= maxDepth {
		return fc
	}
	for _, c := range carriedCalls(fc.Params) {
		fc.DecodedFunctionCalls = append(
			fc.DecodedFunctionCalls,
			self.analyzeFunctionCall(c.value, c.destination, c.data, depth+1),
		)
	}
	return fc
}

// AnalyzeFunctionCallRecursively decodes a call to destination and every
// call carried in its params.
func (self *TxAnalyzer) AnalyzeFunctionCallRecursively(value *big.Int, destination string, data []byte) *FunctionCall {
	return self.analyzeFunctionCall(value, destination, data, 0)
}

// AnalyzeOffline decodes a signed or unsigned transaction without a node.
// The sender is only known for signed transactions.
func (self *TxAnalyzer) AnalyzeOffline(tx *types.Transaction) *TxResult {
	result := &TxResult{
		Hash:     tx.Hash().Hex(),
		Value:    kitcommon.BigToFloatString(tx.Value(), 18),
		Nonce:    fmt.Sprintf("%d", tx.Nonce()),
		GasPrice: kitcommon.BigToFloatString(tx.GasPrice(), 9),
		GasLimit: fmt.Sprintf("%d", tx.Gas()),
	}
	if _, r, _ := tx.RawSignatureValues(); r != nil && r.Sign() != 0 {
		chainID := tx.ChainId()
		if chainID.Sign() == 0 {
			// pre EIP-155 signature
			chainID = nil
		} else {
			result.ChainID = chainID.String()
		}
		if from, err := types.Sender(types.LatestSignerForChainID(chainID), tx); err == nil {
			result.From = self.address(from)
		}
	}
	switch {
	case tx.To() == nil:
		result.TxType = TxTypeCreation
	case len(tx.Data()) == 0:
		result.TxType = TxTypeNormal
		result.To = self.address(*tx.To())
	default:
		result.TxType = TxTypeCall
		result.To = self.address(*tx.To())
		result.Call = self.AnalyzeFunctionCallRecursively(tx.Value(), tx.To().Hex(), tx.Data())
		result.Error = result.Call.Error
	}
	return result
}
