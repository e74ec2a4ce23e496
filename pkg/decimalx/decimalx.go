package decimalx

import (
	"strings"

	"github.com/shopspring/decimal"
)

func MustFromString(s string) decimal.Decimal {
	f, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// IsPowerOfTen 判断 d 是否为 10 的整数次幂，如 0.001、1、100
func IsPowerOfTen(d decimal.Decimal) bool {
	if !d.IsPositive() {
		return false
	}
	digits := strings.Replace(d.String(), ".", "", 1)
	digits = strings.TrimLeft(digits, "0")
	digits = strings.TrimRight(digits, "0")
	return digits == "1"
}
