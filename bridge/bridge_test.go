package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockProvider struct {
	accounts []string
	err      error
}

func (p *mockProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.accounts, nil
}

func TestConnectWithoutProvider(t *testing.T) {
	b := NewBridge(nil, "http://localhost:3000", "token")
	_, err := b.Connect(context.Background())
	assert.ErrorIs(t, err, ErrWalletUnavailable)
}

func TestConnectRejected(t *testing.T) {
	provider := &mockProvider{err: errors.New("user denied")}
	b := NewBridge(provider, "http://localhost:3000", "token")
	_, err := b.Connect(context.Background())
	assert.ErrorIs(t, err, ErrWalletRejected)
	assert.Empty(t, b.Address())
}

func TestConnectNoAccounts(t *testing.T) {
	provider := &mockProvider{accounts: []string{}}
	b := NewBridge(provider, "http://localhost:3000", "token")
	_, err := b.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestConnectReportsToBackend(t *testing.T) {
	reported := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallets/connect", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		body := map[string]string{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		reported <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	provider := &mockProvider{accounts: []string{"0x8ba1f109551bD432803012645Ac136ddd64DBA72"}}
	b := NewBridge(provider, srv.URL, "token")

	address, err := b.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", address)
	assert.Equal(t, address, b.Address())

	select {
	case body := <-reported:
		assert.Equal(t, address, body["wallet_address"])
	case <-time.After(2 * time.Second):
		t.Fatal("connect was not reported to the backend")
	}
}

func TestConnectLastWalletWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	provider := &mockProvider{accounts: []string{"0x1111111111111111111111111111111111111111"}}
	b := NewBridge(provider, srv.URL, "token")
	_, err := b.Connect(context.Background())
	assert.NoError(t, err)

	provider.accounts = []string{"0x2222222222222222222222222222222222222222"}
	_, err = b.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", b.Address())
}

func TestBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallets/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"address":"0x1","balance":{"native":"1.2345 MON","raw_wei":"1234500000000000000","tokens":{"VAULT":"0"}},"network":"Monad Testnet","chainId":10143}}`))
	}))
	defer srv.Close()

	b := NewBridge(nil, srv.URL, "token")
	value, err := b.Balance(context.Background(), "0x1")
	assert.NoError(t, err)
	assert.Equal(t, 1.2345, value)
}

func TestBalanceUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	b := NewBridge(nil, srv.URL, "token")
	value, err := b.Balance(context.Background(), "0x1")
	assert.ErrorIs(t, err, ErrBalanceFetch)
	assert.Equal(t, 0.0, value)
}

func TestBalanceMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"balance":{"native":"not a number"}}}`))
	}))
	defer srv.Close()

	b := NewBridge(nil, srv.URL, "token")
	value, err := b.Balance(context.Background(), "0x1")
	assert.ErrorIs(t, err, ErrBalanceFetch)
	assert.Equal(t, 0.0, value)
}
