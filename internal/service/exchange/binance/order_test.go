package binance

import (
	"context"
	"net/http"
	"testing"

	"github.com/ryan-shaw/binance-order-bot/internal/service/exchange"
	"github.com/ryan-shaw/binance-order-bot/pkg/decimalx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateLimitOrder(t *testing.T) {
	tests := []struct {
		name     string
		side     exchange.Side
		wantSide string
	}{
		{name: "限价买单", side: exchange.SideBuy, wantSide: "BUY"},
		{name: "限价卖单", side: exchange.SideSell, wantSide: "SELL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				params := requestParams(t, r)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v3/order", r.URL.Path)
				assert.Equal(t, "ETHUSDT", params.Get("symbol"))
				assert.Equal(t, tt.wantSide, params.Get("side"))
				assert.Equal(t, "LIMIT", params.Get("type"))
				assert.Equal(t, "GTC", params.Get("timeInForce"))
				assert.Equal(t, "1.01", params.Get("quantity"))
				assert.Equal(t, "99", params.Get("price"))
				writeJSON(w, http.StatusOK, `{"symbol":"ETHUSDT","orderId":28,"status":"NEW","type":"LIMIT"}`)
			})

			id, err := NewOrderService(cli).CreateLimitOrder(context.Background(), exchange.CreateLimitOrderReq{
				TradingPair: exchange.TradingPair{Base: "ETH", Quote: "USDT"},
				Side:        tt.side,
				Price:       decimalx.MustFromString("99"),
				Quantity:    decimalx.MustFromString("1.01"),
			})
			require.NoError(t, err)
			assert.Equal(t, exchange.OrderId("28"), id)
		})
	}
}

func TestOrderService_CreateLimitOrder_Rejected(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"code":-2010,"msg":"Account has insufficient balance for requested action."}`)
	})

	_, err := NewOrderService(cli).CreateLimitOrder(context.Background(), exchange.CreateLimitOrderReq{
		TradingPair: exchange.TradingPair{Base: "ETH", Quote: "USDT"},
		Side:        exchange.SideBuy,
		Price:       decimalx.MustFromString("100"),
		Quantity:    decimalx.MustFromString("1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestOrderService_CreateLimitOrder_InvalidSide(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := NewOrderService(cli).CreateLimitOrder(context.Background(), exchange.CreateLimitOrderReq{
		TradingPair: exchange.TradingPair{Base: "ETH", Quote: "USDT"},
		Side:        exchange.Side("hold"),
	})
	assert.Error(t, err)
}

func TestOrderService_GetOpenOrders(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/openOrders", r.URL.Path)
		assert.Equal(t, "ETHUSDT", r.URL.Query().Get("symbol"))
		writeJSON(w, http.StatusOK, `[
			{"symbol":"ETHUSDT","orderId":1,"price":"2000.00","origQty":"0.5000","side":"SELL","status":"NEW"},
			{"symbol":"ETHUSDT","orderId":2,"price":"2020.00","origQty":"0.2500","side":"SELL","status":"NEW"}
		]`)
	})

	orders, err := NewOrderService(cli).GetOpenOrders(context.Background(), "ETHUSDT")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, exchange.OrderId("1"), orders[0].Id)
	assert.Equal(t, exchange.SideSell, orders[0].Side)
	assert.True(t, decimalx.MustFromString("2000").Equal(orders[0].Price))
	assert.True(t, decimalx.MustFromString("0.25").Equal(orders[1].Quantity))
}

func TestOrderService_CancelOrder(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v3/order", r.URL.Path)
		params := requestParams(t, r)
		assert.Equal(t, "ETHUSDT", params.Get("symbol"))
		assert.Equal(t, "42", params.Get("orderId"))
		writeJSON(w, http.StatusOK, `{"symbol":"ETHUSDT","orderId":42,"status":"CANCELED"}`)
	})

	err := NewOrderService(cli).CancelOrder(context.Background(), exchange.CancelOrderReq{
		Id:     "42",
		Symbol: "ETHUSDT",
	})
	assert.NoError(t, err)
}
