package txanalyzer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type nestedCall struct {
	destination string
	value       *big.Int
	data        []byte
}

func callFromTuple(fields []ParamResult) (nestedCall, bool) {
	c := nestedCall{value: big.NewInt(0)}
	var isThereAddress, isThereBytes bool
	for _, f := range fields {
		if len(f.Value) != 1 {
			continue
		}
		switch {
		case f.Type == "address" && !isThereAddress:
			c.destination = f.Value[0].Value
			isThereAddress = true
		case f.Type == "bytes" && !isThereBytes:
			data, err := hexutil.Decode(f.Value[0].Value)
			if err != nil {
				return c, false
			}
			c.data = data
			isThereBytes = true
		case f.Type == "uint256" && f.Name == "value":
			v, ok := new(big.Int).SetString(f.Value[0].Value, 10)
			if ok {
				c.value = v
			}
		}
	}
	return c, isThereAddress && isThereBytes
}

// carriedCalls returns the calls params carry: params shaped as one
// (address, bytes) call, or tuples of that shape.
func carriedCalls(params []ParamResult) []nestedCall {
	if c, ok := callFromTuple(params); ok {
		return []nestedCall{c}
	}
	calls := []nestedCall{}
	for _, p := range params {
		if len(p.Tuple) == 0 {
			continue
		}
		if c, ok := callFromTuple(p.Tuple); ok {
			calls = append(calls, c)
			continue
		}
		// a tuple array holds one tuple per element
		for _, elem := range p.Tuple {
			if c, ok := callFromTuple(elem.Tuple); ok {
				calls = append(calls, c)
			}
		}
	}
	return calls
}
