package binance

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/require"
)

// newTestClient 返回指向本地 httptest 服务的币安客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) *binance.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := binance.NewClient("test-key", "test-secret")
	cli.BaseURL = srv.URL
	return cli
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// requestParams 合并 query 与 form body，DELETE 请求 ParseForm 不会读取 body
func requestParams(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	params := r.URL.Query()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	form, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	for k, vs := range form {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	return params
}
