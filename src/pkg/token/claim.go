package token

import "fmt"

// Claim is the payload a proof signature is computed over.
type Claim struct {
	TokenID     string `json:"tokenId"`
	Fingerprint string `json:"fingerprint"`
	Message     string `json:"message"`
}

// Canonical renders the claim in the fixed form stored on signature records.
func (c Claim) Canonical() string {
	return fmt.Sprintf("ID:%s|%s|MSG:%s", c.TokenID, c.Fingerprint, c.Message)
}
