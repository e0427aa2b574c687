package ledger

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"
)

func TestNewDistributorSigner_InvalidSeed(t *testing.T) {
	cfg := &config.Config{Ledger: &config.LedgerConfig{DistributorSeed: "not-hex"}}

	_, err := NewDistributorSigner(cfg)
	assert.Error(t, err)

	cfg.Ledger.DistributorSeed = "abcd"
	_, err = NewDistributorSigner(cfg)
	assert.Error(t, err)
}

func TestSign_ProducesVerifiableSignature(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	cfg := &config.Config{Ledger: &config.LedgerConfig{DistributorSeed: hex.EncodeToString(seed)}}

	signer, err := NewDistributorSigner(cfg)
	require.NoError(t, err)

	tx := &service.UnsignedTransaction{
		Source:            "GDDISTRIBUTOR",
		Sequence:          42,
		Fee:               100,
		NetworkPassphrase: "Test Network",
		Operations: []service.Operation{
			{
				Type:        service.OperationPayment,
				Source:      "GDDISTRIBUTOR",
				Destination: "GDWALLET",
				Asset:       entity.Asset{Code: "PAGE", Issuer: "GDISSUER"},
				Amount:      "1",
			},
		},
	}

	signed, err := signer.Sign(tx)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(signed)
	require.NoError(t, err)

	var payload signedPayload
	require.NoError(t, json.Unmarshal(raw, &payload))

	publicKey, err := hex.DecodeString(payload.PublicKey)
	require.NoError(t, err)
	signature, err := hex.DecodeString(payload.Signature)
	require.NoError(t, err)

	assert.True(t, ed25519.Verify(publicKey, []byte(payload.Envelope), signature))

	decoded, err := service.DecodeEnvelope(payload.Envelope)
	require.NoError(t, err)
	assert.Equal(t, tx.Source, decoded.Source)
	assert.Equal(t, tx.Sequence, decoded.Sequence)
}
