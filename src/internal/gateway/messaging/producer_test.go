package messaging

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wallet-service/src/internal/model"
	"wallet-service/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	key   string
	value []byte
}

type recordingProducer struct {
	messages []published
	err      error
}

func (r *recordingProducer) Publish(topic string, key, value []byte) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, published{topic: topic, key: string(key), value: value})
	return nil
}

func (r *recordingProducer) Close() error { return nil }

func TestProducerSendKeysByRecordID(t *testing.T) {
	rec := &recordingProducer{}
	p := NewLifecycleProducer(rec, log.Log{})

	event := &model.StatusEvent{EventID: "e-1", RecordID: "L-7", Kind: "leave", Action: "approve", Status: "approved", OccurredAt: time.Unix(0, 0).UTC()}
	require.NoError(t, p.SendLeave(event))
	require.NoError(t, p.SendVoucher(&model.StatusEvent{RecordID: "V-1"}))

	require.Len(t, rec.messages, 2)
	assert.Equal(t, TopicLeaveStatus, rec.messages[0].topic)
	assert.Equal(t, "L-7", rec.messages[0].key)
	assert.Equal(t, TopicVoucherStatus, rec.messages[1].topic)

	var decoded model.StatusEvent
	require.NoError(t, json.Unmarshal(rec.messages[0].value, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestProducerWithoutKafkaIsNoop(t *testing.T) {
	p := NewWalletProducer(nil, log.Log{})
	assert.NoError(t, p.Send(&model.WalletEvent{EventID: "e"}))
}

func TestProducerPropagatesPublishError(t *testing.T) {
	p := NewLifecycleProducer(&recordingProducer{err: errors.New("broker down")}, log.Log{})
	assert.EqualError(t, p.SendTraining(&model.StatusEvent{RecordID: "T-1"}), "broker down")
}
