package usecase

import (
	"context"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/model/converter"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/token"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type IdentityUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Clock             clock.Clock
	Generator         token.Generator
	Encoder           token.Encoder
	LifecycleProducer *messaging.LifecycleProducer
	state             *stateHolder[entity.IdentityRegistry]
}

func NewIdentityUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	enc token.Encoder,
	lifecycleProducer *messaging.LifecycleProducer,
) *IdentityUseCase {
	return &IdentityUseCase{
		Log:               logger,
		Validate:          validate,
		Clock:             clk,
		Generator:         gen,
		Encoder:           enc,
		LifecycleProducer: lifecycleProducer,
		state: newStateHolder(store, entity.SlotIdentity, func() entity.IdentityRegistry {
			return entity.IdentityRegistry{Signatures: []entity.SignatureRecord{}}
		}),
	}
}

func (c *IdentityUseCase) published(scope, action, recordID string) {
	event := converter.StatusEvent(c.Generator.ID(), converter.KindIdentity, recordID, action, "", c.Clock.Now())
	publish(c.Log, scope, c.LifecycleProducer, (*messaging.LifecycleProducer).SendIdentity, event)
}

func (c *IdentityUseCase) Get(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "GetIdentity", converter.RegistryToResponse)
}

// Mint is a no-op when an identity already exists.
func (c *IdentityUseCase) Mint(ctx context.Context, request *model.MintIdentityRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "MintIdentity", request); err != nil {
		return utils.Result{Error: err}
	}
	core := converter.RequestToIdentityCore(request)
	registry, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		if r.Minted() {
			return r, entity.ErrAlreadyMinted
		}
		return r.Mint(core, entity.NewIdentityNFT(c.Generator, c.Encoder, core, c.Clock.Now()))
	})
	if err == nil {
		c.Log.Info("MintIdentity", "identity minted", "tokenId", registry.Identity.NFT.TokenID)
		c.published("MintIdentity", "mint", registry.Identity.NFT.TokenID)
	}
	return settle(c.Log, "MintIdentity", converter.RegistryToResponse(registry), err)
}

func (c *IdentityUseCase) Verify(ctx context.Context) utils.Result {
	registry, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		return r.Verify(c.Clock.Now())
	})
	if err == nil {
		c.published("VerifyIdentity", "verify", registry.Identity.NFT.TokenID)
	}
	return settle(c.Log, "VerifyIdentity", converter.RegistryToResponse(registry), err)
}

// Revoke discards the identity together with its signature log.
func (c *IdentityUseCase) Revoke(ctx context.Context) utils.Result {
	var tokenID string
	registry, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		if r.Minted() {
			tokenID = r.Identity.NFT.TokenID
		}
		return r.Revoke()
	})
	if err == nil {
		c.published("RevokeIdentity", "revoke", tokenID)
	}
	return settle(c.Log, "RevokeIdentity", converter.RegistryToResponse(registry), err)
}

func (c *IdentityUseCase) Sign(ctx context.Context, request *model.SignRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "SignProof", request); err != nil {
		return utils.Result{Error: err}
	}
	var record entity.SignatureRecord
	_, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		next, rec, err := r.Sign(c.Encoder, entity.Stamp{ID: c.Generator.ID(), At: c.Clock.Now()}, request.Message)
		record = rec
		return next, err
	})
	if err == nil {
		c.published("SignProof", "sign", record.ID)
	}
	return settle(c.Log, "SignProof", record, err)
}

func (c *IdentityUseCase) VerifySignature(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "VerifySignature", request); err != nil {
		return utils.Result{Error: err}
	}
	var record entity.SignatureRecord
	_, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		next, rec, err := r.VerifySignature(request.ID)
		record = rec
		return next, err
	})
	return settle(c.Log, "VerifySignature", record, err)
}

func (c *IdentityUseCase) DeleteSignature(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "DeleteSignature", request); err != nil {
		return utils.Result{Error: err}
	}
	registry, err := c.state.mutate(ctx, func(r entity.IdentityRegistry) (entity.IdentityRegistry, error) {
		return r.DeleteSignature(request.ID)
	})
	return settle(c.Log, "DeleteSignature", converter.RegistryToResponse(registry), err)
}
