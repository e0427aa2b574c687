// Package service defines interfaces for external collaborators consumed by
// the use-case layer.
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"
)

// Ledger-level errors surfaced by LedgerClient implementations.
var (
	// ErrAccountNotFound is returned when the ledger has no such account.
	ErrAccountNotFound = errors.New("ledger account not found")
	// ErrTransactionNotFound is returned when a transaction id is unknown to the ledger.
	ErrTransactionNotFound = errors.New("ledger transaction not found")
)

// OperationType identifies a ledger operation inside a transaction.
type OperationType string

const (
	// OperationChangeTrust establishes (or adjusts) a trustline so the
	// account can hold the asset.
	OperationChangeTrust OperationType = "change_trust"
	// OperationPayment transfers an asset amount between accounts.
	OperationPayment OperationType = "payment"
)

// Operation is a single ledger operation within an unsigned transaction.
type Operation struct {
	Type        OperationType `json:"type"`
	Source      string        `json:"source"`                // Account the operation acts on behalf of.
	Destination string        `json:"destination,omitempty"` // Payment destination; unused for change_trust.
	Asset       entity.Asset  `json:"asset"`
	Amount      string        `json:"amount,omitempty"` // Payment amount as a decimal string.
	Limit       string        `json:"limit,omitempty"`  // Trustline limit for change_trust.
}

// UnsignedTransaction is an externally signable transaction payload. The
// envelope encoding is canonical JSON in base64; the wallet collaborator
// signs the envelope bytes and returns an opaque signed payload the server
// forwards to the ledger without re-validation (the ledger is the authority
// on signature validity).
type UnsignedTransaction struct {
	Source            string      `json:"source"`   // Source account of the transaction.
	Sequence          int64       `json:"sequence"` // Next sequence number of the source account.
	Fee               int64       `json:"fee"`      // Total fee in stroops.
	NetworkPassphrase string      `json:"network_passphrase"`
	Memo              string      `json:"memo,omitempty"`
	Operations        []Operation `json:"operations"`
}

// Envelope encodes the transaction for signing.
func (tx *UnsignedTransaction) Envelope() (string, error) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode transaction envelope")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeEnvelope parses a base64 envelope back into a transaction.
func DecodeEnvelope(envelope string) (*UnsignedTransaction, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction envelope")
	}

	tx := new(UnsignedTransaction)
	if err := json.Unmarshal(raw, tx); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal transaction envelope")
	}

	return tx, nil
}

// Account is the ledger-side view of an account.
type Account struct {
	ID       string         `json:"id"`
	Sequence int64          `json:"sequence"`
	Assets   []entity.Asset `json:"assets"` // Assets the account holds trustlines for.
}

// SubmitResult reports the outcome of broadcasting a signed transaction.
type SubmitResult struct {
	Successful bool   `json:"successful"`
	TxID       string `json:"tx_id"`
	ResultCode string `json:"result_code,omitempty"` // Ledger-level failure code when not successful.
}

// LedgerTransaction is a settled transaction looked up by id.
type LedgerTransaction struct {
	ID         string `json:"id"`
	Successful bool   `json:"successful"`
	Ledger     int64  `json:"ledger"` // Sequence of the ledger that included the transaction.
	Memo       string `json:"memo"`   // Consumption id carried by reward transactions.
}

// LedgerClient defines the interface to the external blockchain ledger.
type LedgerClient interface {
	// LoadAccount fetches the current state of an account, including its
	// sequence number and trustlines.
	LoadAccount(ctx context.Context, accountID string) (*Account, error)

	// AccountTrustsAsset reports whether the account holds a trustline for
	// the asset. Missing accounts report false without error.
	AccountTrustsAsset(ctx context.Context, accountID string, asset entity.Asset) (bool, error)

	// SubmitTransaction broadcasts a signed envelope and waits for settlement
	// confirmation.
	SubmitTransaction(ctx context.Context, signedEnvelope string) (*SubmitResult, error)

	// GetTransaction looks up a settled transaction by id.
	GetTransaction(ctx context.Context, txID string) (*LedgerTransaction, error)
}

// TransactionSigner signs envelopes with the distributor key for the path
// where no wallet signature is required.
type TransactionSigner interface {
	Sign(tx *UnsignedTransaction) (string, error)
}
