package kafka

import (
	"testing"

	"wallet-service/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitKafkaConfigSplitsBrokers(t *testing.T) {
	kc := InitKafkaConfig(Cfg{KafkaUrl: " a:9092, ,b:9092 ", ClientID: "wallet"})
	assert.Equal(t, []string{"a:9092", "b:9092"}, kc.Brokers)

	c := kc.GetSaramaConfig()
	assert.Equal(t, "wallet", c.ClientID)
	assert.Equal(t, sarama.WaitForAll, c.Producer.RequiredAcks)
	assert.True(t, c.Producer.Return.Successes)
	assert.False(t, c.Net.SASL.Enable)
}

func TestSaslEnabledWithCredentials(t *testing.T) {
	c := InitKafkaConfig(Cfg{KafkaUrl: "a:9092", KafkaUsername: "u", KafkaPassword: "p"}).GetSaramaConfig()
	assert.True(t, c.Net.SASL.Enable)
	assert.Equal(t, "u", c.Net.SASL.User)
	assert.True(t, c.Net.TLS.Enable)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(InitKafkaConfig(Cfg{}), log.Log{})
	require.Error(t, err)
}
