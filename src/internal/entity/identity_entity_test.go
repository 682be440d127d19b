package entity

import (
	"fmt"
	"testing"

	"wallet-service/src/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCore = SoldierIdentityCore{ServiceNumber: "25-71234567", Name: "홍길동", Rank: RankSergeant, Unit: "1사단"}

func mintedRegistry(t *testing.T) IdentityRegistry {
	t.Helper()
	nft := NewIdentityNFT(token.NewSequenceGenerator("id"), token.Base64Encoder{}, testCore, epoch)
	r, err := IdentityRegistry{}.Mint(testCore, nft)
	require.NoError(t, err)
	return r
}

func TestMintIsIdempotentlyRejected(t *testing.T) {
	r := mintedRegistry(t)
	require.True(t, r.Minted())
	assert.False(t, r.Identity.Verified)
	assert.Equal(t, IdentityContract, r.Identity.NFT.Contract)
	assert.Equal(t, MockChainID, r.Identity.NFT.ChainID)
	assert.Equal(t, IdentityFingerprint(token.Base64Encoder{}, testCore), r.Identity.NFT.Fingerprint)

	other := SoldierIdentityCore{ServiceNumber: "99", Name: "other", Rank: RankPrivate}
	next, err := r.Mint(other, IdentityNFT{})
	require.ErrorIs(t, err, ErrAlreadyMinted)
	assert.True(t, IsRejection(err))
	assert.Equal(t, r, next)
}

func TestUnmintedOperationsAreRejected(t *testing.T) {
	var r IdentityRegistry
	_, err := r.Verify(epoch)
	require.ErrorIs(t, err, ErrNotMinted)
	_, err = r.Revoke()
	require.ErrorIs(t, err, ErrNotMinted)
	_, _, err = r.Sign(token.Base64Encoder{}, stampAt(1), "hello")
	require.ErrorIs(t, err, ErrNotMinted)
	_, _, err = r.VerifySignature("x")
	require.ErrorIs(t, err, ErrNotMinted)
}

func TestVerifyStampsIdentity(t *testing.T) {
	r := mintedRegistry(t)
	next, err := r.Verify(stampAt(3).At)
	require.NoError(t, err)
	assert.True(t, next.Identity.Verified)
	require.NotNil(t, next.Identity.LastVerifiedAt)
	assert.Equal(t, stampAt(3).At, *next.Identity.LastVerifiedAt)
	assert.False(t, r.Identity.Verified, "source registry must not change")
}

func TestSignProducesCanonicalPayload(t *testing.T) {
	enc := token.Base64Encoder{}
	r := mintedRegistry(t)
	nft := r.Identity.NFT

	next, rec, err := r.Sign(enc, stampAt(1), "출입 확인")
	require.NoError(t, err)
	want := fmt.Sprintf("ID:%s|%s|MSG:%s", nft.TokenID, nft.Fingerprint, "출입 확인")
	assert.Equal(t, want, rec.Payload)
	assert.Equal(t, enc.Encode(want, nft.TxHash[:12]), rec.Signature)
	assert.True(t, rec.Valid)
	assert.Equal(t, []SignatureRecord{rec}, next.Signatures)
}

func TestSignaturesAreCapped(t *testing.T) {
	r := mintedRegistry(t)
	var err error
	for i := 0; i < MaxSignatures+5; i++ {
		r, _, err = r.Sign(token.Base64Encoder{}, stampAt(i), fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}
	require.Len(t, r.Signatures, MaxSignatures)
	assert.Equal(t, fmt.Sprintf("tx-%d", MaxSignatures+4), r.Signatures[0].ID)
	assert.Equal(t, "tx-5", r.Signatures[MaxSignatures-1].ID)
}

func TestVerifyAndDeleteSignature(t *testing.T) {
	r := mintedRegistry(t)
	r, rec, _ := r.Sign(token.Blake2bEncoder{}, stampAt(1), "a")
	r, _, _ = r.Sign(token.Blake2bEncoder{}, stampAt(2), "b")

	_, _, err := r.VerifySignature("missing")
	require.ErrorIs(t, err, ErrNotFound)

	r.Signatures[1].Signature = "short"
	checked, got, err := r.VerifySignature(rec.ID)
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.False(t, checked.Signatures[1].Valid)

	deleted, err := checked.DeleteSignature(rec.ID)
	require.NoError(t, err)
	require.Len(t, deleted.Signatures, 1)
	assert.Equal(t, "tx-2", deleted.Signatures[0].ID)
	assert.Len(t, checked.Signatures, 2)

	_, err = deleted.DeleteSignature(rec.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRevokeClearsIdentityAndSignatures(t *testing.T) {
	r := mintedRegistry(t)
	r, _, _ = r.Sign(token.Base64Encoder{}, stampAt(1), "a")

	next, err := r.Revoke()
	require.NoError(t, err)
	assert.False(t, next.Minted())
	assert.Empty(t, next.Signatures)

	again, err := next.Mint(testCore, IdentityNFT{TokenID: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", again.Identity.NFT.TokenID)
}

func TestRankValid(t *testing.T) {
	for _, r := range Ranks {
		assert.True(t, r.Valid())
	}
	assert.False(t, Rank("general").Valid())
}
