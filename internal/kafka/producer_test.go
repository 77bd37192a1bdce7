package kafka

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bank-aml-pod/internal/models"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *models.WeightsEvent {
	return &models.WeightsEvent{
		EventID:   "evt_1",
		EventType: EventWeightsReady,
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Data: models.WeightsEventData{
			RunID:        "run_1",
			BankName:     "Bank_A",
			FeatureNames: []string{"amount_log", "is_foreign", "hour", "amount_ratio"},
			Coef:         []float64{0.1, 0.2, 0.3, 0.4},
			Intercept:    -3,
			Records:      3000,
			Accuracy:     0.97,
		},
	}
}

func TestProducer_SendWeightsEvent(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, NewSaramaConfig())
	syncProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "aml.model.weights", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "Bank_A", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var event models.WeightsEvent
		require.NoError(t, json.Unmarshal(value, &event))
		assert.Equal(t, "run_1", event.Data.RunID)
		assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, event.Data.Coef)
		return nil
	})

	producer := newProducer(syncProducer, "aml.model.weights")
	require.NoError(t, producer.SendWeightsEvent(testEvent()))
	require.NoError(t, producer.Close())
}

func TestProducer_SendWeightsEvent_Error(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, NewSaramaConfig())
	brokerErr := errors.New("broker unavailable")
	syncProducer.ExpectSendMessageAndFail(brokerErr)

	producer := newProducer(syncProducer, "aml.model.weights")
	err := producer.SendWeightsEvent(testEvent())
	assert.ErrorIs(t, err, brokerErr)
	require.NoError(t, producer.Close())
}

func TestNewSaramaConfig(t *testing.T) {
	config := NewSaramaConfig()
	assert.True(t, config.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.Equal(t, 5, config.Producer.Retry.Max)
}
