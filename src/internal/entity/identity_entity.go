package entity

import (
	"time"

	"wallet-service/src/pkg/token"
)

type Rank string

const (
	RankPrivate            Rank = "이병"
	RankPrivateFirstClass  Rank = "일병"
	RankCorporal           Rank = "상병"
	RankSergeant           Rank = "병장"
	RankStaffSergeant      Rank = "하사"
	RankSergeantFirstClass Rank = "중사"
	RankMasterSergeant     Rank = "상사"
	RankSergeantMajor      Rank = "원사"
	RankSecondLieutenant   Rank = "소위"
	RankFirstLieutenant    Rank = "중위"
	RankCaptain            Rank = "대위"
	RankMajor              Rank = "소령"
	RankLieutenantColonel  Rank = "중령"
	RankColonel            Rank = "대령"
)

var Ranks = []Rank{
	RankPrivate, RankPrivateFirstClass, RankCorporal, RankSergeant,
	RankStaffSergeant, RankSergeantFirstClass, RankMasterSergeant, RankSergeantMajor,
	RankSecondLieutenant, RankFirstLieutenant, RankCaptain, RankMajor,
	RankLieutenantColonel, RankColonel,
}

func (r Rank) Valid() bool {
	for _, v := range Ranks {
		if v == r {
			return true
		}
	}
	return false
}

const (
	IdentityContract = "0xIDCARDDEMO000000000000000000000000000001"
	MockChainID      = 7777
	MaxSignatures    = 25
)

type SoldierIdentityCore struct {
	ServiceNumber string `json:"serviceNumber"`
	Name          string `json:"name"`
	Rank          Rank   `json:"rank"`
	Unit          string `json:"unit,omitempty"`
}

type IdentityNFT struct {
	TokenID     string    `json:"tokenId"`
	Contract    string    `json:"contract"`
	ChainID     int       `json:"chainId"`
	IssuedAt    time.Time `json:"issuedAt"`
	TxHash      string    `json:"txHash"`
	OwnerWallet string    `json:"ownerWallet"`
	MetadataCID string    `json:"metadataCid"`
	Fingerprint string    `json:"fingerprint"`
}

type SoldierIdentity struct {
	SoldierIdentityCore
	NFT            IdentityNFT `json:"nft"`
	Verified       bool        `json:"verified"`
	LastVerifiedAt *time.Time  `json:"lastVerifiedAt,omitempty"`
}

type SignatureRecord struct {
	ID        string    `json:"id"`
	Payload   string    `json:"payload"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"createdAt"`
	Valid     bool      `json:"valid"`
}

// IdentityRegistry holds at most one minted identity and its signature log.
type IdentityRegistry struct {
	Identity   *SoldierIdentity  `json:"identity,omitempty"`
	Signatures []SignatureRecord `json:"signatures"`
}

func IdentityFingerprint(enc token.Encoder, core SoldierIdentityCore) string {
	return enc.Encode(core.ServiceNumber, core.Name, string(core.Rank))
}

// NewIdentityNFT assembles mock mint metadata; only the fingerprint is deterministic.
func NewIdentityNFT(gen token.Generator, enc token.Encoder, core SoldierIdentityCore, at time.Time) IdentityNFT {
	return IdentityNFT{
		TokenID:     gen.TokenID(),
		Contract:    IdentityContract,
		ChainID:     MockChainID,
		IssuedAt:    at,
		TxHash:      gen.TxHash(),
		OwnerWallet: gen.WalletAddress(),
		MetadataCID: gen.ContentID(),
		Fingerprint: IdentityFingerprint(enc, core),
	}
}

func (r IdentityRegistry) Minted() bool {
	return r.Identity != nil
}

func (r IdentityRegistry) Mint(core SoldierIdentityCore, nft IdentityNFT) (IdentityRegistry, error) {
	if r.Minted() {
		return r, ErrAlreadyMinted
	}
	return IdentityRegistry{
		Identity:   &SoldierIdentity{SoldierIdentityCore: core, NFT: nft},
		Signatures: []SignatureRecord{},
	}, nil
}

func (r IdentityRegistry) Verify(at time.Time) (IdentityRegistry, error) {
	if !r.Minted() {
		return r, ErrNotMinted
	}
	id := *r.Identity
	id.Verified = true
	id.LastVerifiedAt = &at
	r.Identity = &id
	return r, nil
}

func (r IdentityRegistry) Revoke() (IdentityRegistry, error) {
	if !r.Minted() {
		return r, ErrNotMinted
	}
	return IdentityRegistry{Signatures: []SignatureRecord{}}, nil
}

// Sign appends a mock proof over the claim (tokenId, fingerprint, message),
// keeping only the newest MaxSignatures records.
func (r IdentityRegistry) Sign(enc token.Encoder, s Stamp, message string) (IdentityRegistry, SignatureRecord, error) {
	if !r.Minted() {
		return r, SignatureRecord{}, ErrNotMinted
	}
	nft := r.Identity.NFT
	canonical := token.Claim{TokenID: nft.TokenID, Fingerprint: nft.Fingerprint, Message: message}.Canonical()
	hashSlice := nft.TxHash
	if len(hashSlice) > 12 {
		hashSlice = hashSlice[:12]
	}
	rec := SignatureRecord{
		ID:        s.ID,
		Payload:   canonical,
		Signature: enc.Encode(canonical, hashSlice),
		CreatedAt: s.At,
		Valid:     true,
	}
	sigs := make([]SignatureRecord, 0, len(r.Signatures)+1)
	sigs = append(sigs, rec)
	sigs = append(sigs, r.Signatures...)
	if len(sigs) > MaxSignatures {
		sigs = sigs[:MaxSignatures]
	}
	r.Signatures = sigs
	return r, rec, nil
}

func (r IdentityRegistry) findSignature(id string) int {
	for i, s := range r.Signatures {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// VerifySignature re-runs the mock validity check and stores the verdict.
func (r IdentityRegistry) VerifySignature(id string) (IdentityRegistry, SignatureRecord, error) {
	if !r.Minted() {
		return r, SignatureRecord{}, ErrNotMinted
	}
	i := r.findSignature(id)
	if i < 0 {
		return r, SignatureRecord{}, ErrNotFound
	}
	sigs := append([]SignatureRecord(nil), r.Signatures...)
	sigs[i].Valid = len(sigs[i].Signature) > 10
	r.Signatures = sigs
	return r, sigs[i], nil
}

func (r IdentityRegistry) DeleteSignature(id string) (IdentityRegistry, error) {
	i := r.findSignature(id)
	if i < 0 {
		return r, ErrNotFound
	}
	sigs := make([]SignatureRecord, 0, len(r.Signatures)-1)
	sigs = append(sigs, r.Signatures[:i]...)
	sigs = append(sigs, r.Signatures[i+1:]...)
	r.Signatures = sigs
	return r, nil
}
