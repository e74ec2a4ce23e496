package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradingPair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TradingPair
	}{
		{
			name:  "usdt 交易对",
			input: "ETHUSDT",
			want:  TradingPair{Base: "ETH", Quote: "USDT"},
		},
		{
			name:  "小写自动转大写",
			input: "btcusdc",
			want:  TradingPair{Base: "BTC", Quote: "USDC"},
		},
		{
			name:  "btc 计价",
			input: "ETHBTC",
			want:  TradingPair{Base: "ETH", Quote: "BTC"},
		},
		{
			name:  "FDUSD 优先于 USD 后缀",
			input: "SOLFDUSD",
			want:  TradingPair{Base: "SOL", Quote: "FDUSD"},
		},
		{
			name:  "未知 quote",
			input: "FOOBAR",
			want:  TradingPair{Base: "FOOBAR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTradingPair(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Base+tt.want.Quote, got.ToString())
		})
	}
}

func TestTradingPairIsZero(t *testing.T) {
	assert.True(t, TradingPair{}.IsZero())
	assert.False(t, ParseTradingPair("ETHUSDT").IsZero())
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("BUY")
	require.NoError(t, err)
	assert.Equal(t, SideBuy, side)

	side, err = ParseSide("sell")
	require.NoError(t, err)
	assert.Equal(t, SideSell, side)

	_, err = ParseSide("hold")
	assert.Error(t, err)
}

func TestOrderId(t *testing.T) {
	id := OrderIdFromInt64(12345)
	assert.Equal(t, "12345", id.ToString())
	assert.Equal(t, int64(12345), id.ToInt64())
	assert.False(t, id.IsZero())
	assert.Equal(t, int64(0), OrderId("abc").ToInt64())
	assert.True(t, OrderId("").IsZero())
}
