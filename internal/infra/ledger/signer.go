// Package ledger provides the distributor-side transaction signer.
package ledger

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"

	"pindrop/config"
	"pindrop/internal/domain/service"

	"github.com/pkg/errors"
)

// distributorSigner signs envelopes with the marketplace distributor key for
// claims that need no wallet signature.
type distributorSigner struct {
	privateKey ed25519.PrivateKey
	publicKey  string
}

// NewDistributorSigner builds a TransactionSigner from the configured
// distributor seed (hex-encoded ed25519 seed).
func NewDistributorSigner(cfg *config.Config) (service.TransactionSigner, error) {
	if cfg.Ledger == nil || cfg.Ledger.DistributorSeed == "" {
		return nil, errors.New("ledger distributor seed must be provided")
	}

	seed, err := hex.DecodeString(cfg.Ledger.DistributorSeed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode distributor seed")
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Errorf("distributor seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	privateKey := ed25519.NewKeyFromSeed(seed)

	return &distributorSigner{
		privateKey: privateKey,
		publicKey:  hex.EncodeToString(privateKey.Public().(ed25519.PublicKey)),
	}, nil
}

// signedPayload is the wire shape of a distributor-signed envelope.
type signedPayload struct {
	Envelope  string `json:"envelope"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

// Sign encodes the transaction envelope and attaches the distributor
// signature over the envelope bytes.
func (s *distributorSigner) Sign(tx *service.UnsignedTransaction) (string, error) {
	envelope, err := tx.Envelope()
	if err != nil {
		return "", err
	}

	signature := ed25519.Sign(s.privateKey, []byte(envelope))

	raw, err := json.Marshal(signedPayload{
		Envelope:  envelope,
		PublicKey: s.publicKey,
		Signature: hex.EncodeToString(signature),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode signed payload")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
