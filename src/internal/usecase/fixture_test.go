package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/databases"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/token"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type published struct {
	topic string
	key   string
}

type recordingProducer struct {
	mu       sync.Mutex
	messages []published
}

func (r *recordingProducer) Publish(topic string, key, _ []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, published{topic: topic, key: string(key)})
	return nil
}

func (r *recordingProducer) Close() error { return nil }

func (r *recordingProducer) topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.topic)
	}
	return out
}

// flakyStore fails every Save once failSaves is set.
type flakyStore struct {
	repository.SnapshotStore
	failSaves bool
}

func (f *flakyStore) Save(ctx context.Context, slot string, src any) error {
	if f.failSaves {
		return errors.New("disk full")
	}
	return f.SnapshotStore.Save(ctx, slot, src)
}

type fixture struct {
	store     *flakyStore
	clock     *clock.Manual
	gen       *token.SequenceGenerator
	enc       token.Encoder
	kafka     *recordingProducer
	log       log.Log
	validate  *validator.Validate
	wallet    *messaging.WalletProducer
	lifecycle *messaging.LifecycleProducer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := databases.Open(databases.Cfg{Driver: databases.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	kafka := &recordingProducer{}
	logger := log.Log{}
	return &fixture{
		store:     &flakyStore{SnapshotStore: repository.NewSnapshotRepository(db)},
		clock:     clock.NewManual(epoch),
		gen:       token.NewSequenceGenerator("t"),
		enc:       token.Base64Encoder{},
		kafka:     kafka,
		log:       logger,
		validate:  model.NewValidator(),
		wallet:    messaging.NewWalletProducer(kafka, logger),
		lifecycle: messaging.NewLifecycleProducer(kafka, logger),
	}
}

func mutation[T any](t *testing.T, result utils.Result) *model.Mutation[T] {
	t.Helper()
	require.NoError(t, result.Error)
	m, ok := result.Data.(*model.Mutation[T])
	require.True(t, ok, "unexpected data %T", result.Data)
	return m
}
