package modelservice

import (
	"log"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/kafka"
	"bank-aml-pod/internal/redis"
	"bank-aml-pod/internal/services"
	"bank-aml-pod/internal/storage"
	"bank-aml-pod/internal/storage/sqlite"
)

// Dependencies содержит все зависимости сервиса модели.
// RedisClient и KafkaProducer равны nil, если подключиться не удалось
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	StorageRepo   storage.TrainingRepository
	RedisClient   *redis.Client
	KafkaProducer kafka.Producer
	PodService    services.PodService
}

// InitializeDependencies инициализирует все зависимости сервиса модели
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		StorageConn: storageConn,
		StorageRepo: sqlite.NewRepository(storageConn),
	}

	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (weights will not be cached): %v", err)
	} else {
		log.Println("Redis connection established")
		deps.RedisClient = redisClient
	}

	if len(cfg.Kafka.Brokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS is empty, weights will not be published")
	} else {
		log.Println("Connecting to Kafka...")
		producer, err := kafka.NewProducer(cfg)
		if err != nil {
			log.Printf("Warning: Failed to create Kafka producer (weights will not be published): %v", err)
		} else {
			log.Println("Kafka producer connected successfully")
			deps.KafkaProducer = producer
		}
	}

	// Интерфейсы получают nil без типа, если клиент недоступен
	var cache redis.ClientInterface
	if deps.RedisClient != nil {
		cache = deps.RedisClient
	}
	deps.PodService = services.NewPodService(cfg, deps.StorageRepo, deps.KafkaProducer, cache)

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
