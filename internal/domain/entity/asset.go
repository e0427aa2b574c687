package entity

// Asset identifies a ledger asset by code and issuing account.
type Asset struct {
	Code   string `json:"code"`   // The asset code, e.g. "BAND".
	Issuer string `json:"issuer"` // The public key of the issuing account.
}

// Native reports whether the asset is the ledger's native currency, which
// needs no trustline.
func (a Asset) Native() bool {
	return a.Issuer == ""
}
