package txanalyzer

import "math/big"

// Value is one decoded value. Addresses carry their label.
type Value struct {
	Value string
	Label string
}

type ParamResult struct {
	Name  string
	Type  string
	Value []Value
	Tuple []ParamResult
}

// FunctionCall is a decoded call. Calls carried inside its params, such as
// the calls of a multicall, are decoded into DecodedFunctionCalls.
type FunctionCall struct {
	Destination          Value
	Value                *big.Int
	Contract             string
	Method               string
	Params               []ParamResult
	DecodedFunctionCalls []*FunctionCall
	Error                string
}

const (
	TxTypeNormal   = "normal"
	TxTypeCall     = "contract call"
	TxTypeCreation = "contract creation"
)

type TxResult struct {
	Hash     string
	ChainID  string
	From     Value
	To       Value
	Value    string
	Nonce    string
	GasPrice string
	GasLimit string
	TxType   string

	Call *FunctionCall

	Error string
}
