// Package horizon implements the ledger client against a Horizon-compatible
// HTTP API.
package horizon

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client talks to a Horizon-compatible ledger API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.LedgerClient, error) {
	if cfg.Ledger == nil || cfg.Ledger.HorizonURL == "" {
		return nil, errors.New("ledger horizon url must be provided")
	}

	timeout := cfg.Ledger.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Ledger.HorizonURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// accountResponse mirrors the Horizon account resource. Only the fields the
// claim flow needs are decoded.
type accountResponse struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
	Balances []struct {
		AssetType   string `json:"asset_type"`
		AssetCode   string `json:"asset_code"`
		AssetIssuer string `json:"asset_issuer"`
	} `json:"balances"`
}

// submitResponse mirrors the Horizon transaction submission result.
type submitResponse struct {
	ID         string `json:"id"`
	Hash       string `json:"hash"`
	Successful bool   `json:"successful"`
	Extras     struct {
		ResultCodes struct {
			Transaction string `json:"transaction"`
		} `json:"result_codes"`
	} `json:"extras"`
}

// transactionResponse mirrors the Horizon transaction resource.
type transactionResponse struct {
	ID         string `json:"id"`
	Successful bool   `json:"successful"`
	Ledger     int64  `json:"ledger"`
	Memo       string `json:"memo"`
}

// LoadAccount fetches the current state of an account from the ledger.
func (c *Client) LoadAccount(ctx context.Context, accountID string) (*service.Account, error) {
	var body accountResponse
	if err := c.getJSON(ctx, "/accounts/"+url.PathEscape(accountID), &body); err != nil {
		return nil, err
	}

	sequence, err := strconv.ParseInt(body.Sequence, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse account sequence")
	}

	assets := make([]entity.Asset, 0, len(body.Balances))
	for _, balance := range body.Balances {
		if balance.AssetType == "native" {
			assets = append(assets, entity.Asset{})

			continue
		}
		assets = append(assets, entity.Asset{
			Code:   balance.AssetCode,
			Issuer: balance.AssetIssuer,
		})
	}

	return &service.Account{
		ID:       body.ID,
		Sequence: sequence,
		Assets:   assets,
	}, nil
}

// AccountTrustsAsset reports whether the account holds a trustline for the
// asset. A missing account reports false without error.
func (c *Client) AccountTrustsAsset(ctx context.Context, accountID string, asset entity.Asset) (bool, error) {
	account, err := c.LoadAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return false, nil
		}

		return false, err
	}

	for _, held := range account.Assets {
		if held == asset {
			return true, nil
		}
	}

	return false, nil
}

// SubmitTransaction broadcasts a signed envelope and waits for the ledger to
// report settlement.
func (c *Client) SubmitTransaction(ctx context.Context, signedEnvelope string) (*service.SubmitResult, error) {
	form := url.Values{}
	form.Set("tx", signedEnvelope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit transaction")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Horizon reports submission failures with a 4xx status and result codes
	// in the body; both paths decode the same shape.
	var body submitResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrapf(err, "unexpected submit response (status %d)", resp.StatusCode)
	}

	txID := body.ID
	if txID == "" {
		txID = body.Hash
	}

	result := &service.SubmitResult{
		Successful: body.Successful && resp.StatusCode >= 200 && resp.StatusCode < 300,
		TxID:       txID,
		ResultCode: body.Extras.ResultCodes.Transaction,
	}

	c.logger.Info("ledger transaction submitted",
		slog.String("tx_id", result.TxID),
		slog.Bool("successful", result.Successful),
		slog.String("result_code", result.ResultCode),
	)

	return result, nil
}

// GetTransaction looks up a settled transaction by id.
func (c *Client) GetTransaction(ctx context.Context, txID string) (*service.LedgerTransaction, error) {
	var body transactionResponse
	if err := c.getJSON(ctx, "/transactions/"+url.PathEscape(txID), &body); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, service.ErrTransactionNotFound
		}

		return nil, err
	}

	return &service.LedgerTransaction{
		ID:         body.ID,
		Successful: body.Successful,
		Ledger:     body.Ledger,
		Memo:       body.Memo,
	}, nil
}

// getJSON performs a GET against the ledger API and decodes the response.
// A 404 surfaces as ErrAccountNotFound for callers to translate.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "ledger request failed: %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return service.ErrAccountNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("ledger returned non-success status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode ledger response")
	}

	return nil
}
