// Package bridge is the client half of the wallet flow: it talks to an
// injected wallet provider for account access and to the VaultHive API
// for everything else.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrWalletUnavailable = errors.New("no wallet provider available")
	ErrWalletRejected    = errors.New("wallet connection rejected")
	ErrNoAccount         = errors.New("wallet returned no accounts")
	ErrBalanceFetch      = errors.New("could not fetch balance")
)

// Provider is the injected wallet. RequestAccounts blocks until the user
// approves or rejects the connection prompt.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
}

type Bridge struct {
	provider Provider
	apiURL   string
	token    string
	http     *http.Client
	logger   zerolog.Logger

	mu      sync.Mutex
	address string
}

type Option func(*Bridge)

func WithHTTPClient(client *http.Client) Option {
	return func(b *Bridge) {
		b.http = client
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// NewBridge wires a provider to the backend at apiURL. The token is the
// session token from the login response.
func NewBridge(provider Provider, apiURL, token string, options ...Option) *Bridge {
	b := &Bridge{
		provider: provider,
		apiURL:   strings.TrimSuffix(apiURL, "/"),
		token:    token,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Address returns the connected wallet address, empty when no wallet has
// been connected yet.
func (b *Bridge) Address() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.address
}

// Connect asks the provider for accounts and stores the first one.
// Connecting again with a different wallet overwrites the previous
// address. The backend association report is fire and forget.
func (b *Bridge) Connect(ctx context.Context) (string, error) {
	if b.provider == nil {
		return "", ErrWalletUnavailable
	}
	accounts, err := b.provider.RequestAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWalletRejected, err)
	}
	if len(accounts) == 0 {
		return "", ErrNoAccount
	}

	address := accounts[0]
	b.mu.Lock()
	b.address = address
	b.mu.Unlock()

	go b.reportConnection(address)

	return address, nil
}

func (b *Bridge) reportConnection(address string) {
	payload, err := json.Marshal(map[string]string{"wallet_address": address})
	if err != nil {
		b.logger.Err(err).Msg("failed to encode wallet connect report")
		return
	}
	req, err := http.NewRequest(http.MethodPost, b.apiURL+"/api/wallets/connect", bytes.NewReader(payload))
	if err != nil {
		b.logger.Err(err).Msg("failed to build wallet connect report")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.token)

	resp, err := b.http.Do(req)
	if err != nil {
		b.logger.Err(err).Msg("wallet connect report failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b.logger.Warn().Int("status", resp.StatusCode).Msg("wallet connect report rejected")
	}
}

type balanceResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Balance struct {
			Native string `json:"native"`
		} `json:"balance"`
	} `json:"data"`
}

// Balance fetches the native balance for an address from the backend.
// Any failure yields 0 and ErrBalanceFetch so callers can keep whatever
// value they last displayed.
func (b *Bridge) Balance(ctx context.Context, address string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.apiURL+"/api/wallets/balance?address="+address, nil)
	if err != nil {
		return 0, ErrBalanceFetch
	}
	req.Header.Set("Authorization", "Bearer "+b.token)

	resp, err := b.http.Do(req)
	if err != nil {
		return 0, ErrBalanceFetch
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, ErrBalanceFetch
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, ErrBalanceFetch
	}

	native := strings.TrimSuffix(body.Data.Balance.Native, " MON")
	value, err := strconv.ParseFloat(native, 64)
	if err != nil {
		return 0, ErrBalanceFetch
	}
	return value, nil
}
