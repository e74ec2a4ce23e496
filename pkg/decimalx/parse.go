package decimalx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePositive 解析命令行传入的数值，必须大于 0
func ParsePositive(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: invalid decimal %q", name, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("--%s must be greater than 0, got %s", name, d.String())
	}
	return d, nil
}
