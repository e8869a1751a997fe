package common

import (
	"fmt"
	"math/big"
	"strings"
)

func pow10(decimal uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(decimal), nil)
}

// FloatStringToBig converts a decimal string to its integer amount with
// decimal digits, exactly.
// Example:
// - FloatStringToBig("1.234", 4) = 12340
// - FloatStringToBig("0.00001", 4) fails, the amount is below precision
func FloatStringToBig(value string, decimal uint64) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "-") {
		return nil, fmt.Errorf("amount %q can't be negative", value)
	}
	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if uint64(len(frac)) > decimal {
		return nil, fmt.Errorf("amount %q has more than %d decimals", value, decimal)
	}
	digits := whole + frac + strings.Repeat("0", int(decimal)-len(frac))
	res, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("couldn't parse %q as a number", value)
	}
	return res, nil
}

// BigToFloatString renders value with decimal digits, without trailing
// zeros.
// Example:
// - BigToFloatString(1100, 3) = "1.1"
// - BigToFloatString(1100, 2) = "11"
func BigToFloatString(value *big.Int, decimal uint64) string {
	if value == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(value)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}
	q, r := new(big.Int).QuoRem(abs, pow10(decimal), new(big.Int))
	if r.Sign() == 0 {
		return sign + q.String()
	}
	frac := r.String()
	frac = strings.Repeat("0", int(decimal)-len(frac)) + frac
	return sign + q.String() + "." + strings.TrimRight(frac, "0")
}

func GweiToWei(gwei float64) (*big.Int, error) {
	return FloatStringToBig(big.NewFloat(gwei).Text('f', 9), 9)
}

// ReadableNumber groups the digits of value in threes, marking every ninth
// digit so wei amounts are easy to scan.
func ReadableNumber(value string) string {
	if len(value) <= 4 {
		return value
	}
	digits := []string{}
	for i := range value {
		digits = append([]string{string(value[len(value)-1-i])}, digits...)
		if (i+1)%3 == 0 && i < len(value)-1 {
			if (i+1)%9 == 0 {
				digits = append([]string{"‸"}, digits...)
			} else {
				digits = append([]string{","}, digits...)
			}
		}
	}
	return fmt.Sprintf("%s (%s)", value, strings.Join(digits, ""))
}
