package horizon

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"
)

func newTestClient(t *testing.T, handler http.Handler) service.LedgerClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Ledger: &config.LedgerConfig{HorizonURL: server.URL}}

	client, err := NewClient(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return client
}

func TestLoadAccount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/GDTEST", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "GDTEST",
			"sequence": "4113023891406849",
			"balances": [
				{"asset_type": "credit_alphanum4", "asset_code": "PAGE", "asset_issuer": "GDISSUER"},
				{"asset_type": "native"}
			]
		}`))
	}))

	account, err := client.LoadAccount(context.Background(), "GDTEST")
	require.NoError(t, err)
	assert.Equal(t, "GDTEST", account.ID)
	assert.Equal(t, int64(4113023891406849), account.Sequence)
	assert.Contains(t, account.Assets, entity.Asset{Code: "PAGE", Issuer: "GDISSUER"})
}

func TestLoadAccount_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.LoadAccount(context.Background(), "GDMISSING")
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestAccountTrustsAsset(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "GDTEST",
			"sequence": "1",
			"balances": [
				{"asset_type": "credit_alphanum4", "asset_code": "PAGE", "asset_issuer": "GDISSUER"}
			]
		}`))
	}))

	trusts, err := client.AccountTrustsAsset(context.Background(), "GDTEST", entity.Asset{Code: "PAGE", Issuer: "GDISSUER"})
	require.NoError(t, err)
	assert.True(t, trusts)

	trusts, err = client.AccountTrustsAsset(context.Background(), "GDTEST", entity.Asset{Code: "OTHER", Issuer: "GDISSUER"})
	require.NoError(t, err)
	assert.False(t, trusts)
}

func TestAccountTrustsAsset_MissingAccount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	trusts, err := client.AccountTrustsAsset(context.Background(), "GDMISSING", entity.Asset{Code: "PAGE", Issuer: "GDISSUER"})
	require.NoError(t, err)
	assert.False(t, trusts)
}

func TestSubmitTransaction_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "c2lnbmVk", r.PostFormValue("tx"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "tx123", "successful": true}`))
	}))

	result, err := client.SubmitTransaction(context.Background(), "c2lnbmVk")
	require.NoError(t, err)
	assert.True(t, result.Successful)
	assert.Equal(t, "tx123", result.TxID)
}

func TestSubmitTransaction_Rejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"hash": "tx456",
			"successful": false,
			"extras": {"result_codes": {"transaction": "tx_bad_auth"}}
		}`))
	}))

	result, err := client.SubmitTransaction(context.Background(), "c2lnbmVk")
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "tx456", result.TxID)
	assert.Equal(t, "tx_bad_auth", result.ResultCode)
}

func TestGetTransaction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/tx123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "tx123", "successful": true, "ledger": 98765, "memo": "consumption-42"}`))
	}))

	tx, err := client.GetTransaction(context.Background(), "tx123")
	require.NoError(t, err)
	assert.True(t, tx.Successful)
	assert.Equal(t, int64(98765), tx.Ledger)
	assert.Equal(t, "consumption-42", tx.Memo)
}

func TestGetTransaction_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetTransaction(context.Background(), "txmissing")
	assert.ErrorIs(t, err, service.ErrTransactionNotFound)
}
