package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/models"

	"github.com/IBM/sarama"
)

// EventWeightsReady - тип события готовности весов
const EventWeightsReady = "model_weights_ready"

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer создает синхронного продюсера для топика весов
func NewProducer(cfg *config.Config) (Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, NewSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return newProducer(producer, cfg.Kafka.WeightsTopic), nil
}

// NewSaramaConfig возвращает настройки продюсера: подтверждение всеми репликами и 5 повторов
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	return config
}

func newProducer(producer sarama.SyncProducer, topic string) *ProducerImpl {
	return &ProducerImpl{
		producer: producer,
		topic:    topic,
	}
}

// SendWeightsEvent публикует веса; ключ сообщения - имя банка
func (p *ProducerImpl) SendWeightsEvent(event *models.WeightsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.Data.BankName),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Printf("Weights of %s sent to topic %s, partition %d, offset %d", event.Data.BankName, p.topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
