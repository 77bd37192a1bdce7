package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Data      DataConfig
	Generator GeneratorConfig
	Model     ModelConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Server    ServerConfig
}

type DataConfig struct {
	Dir string // Корневая директория для файлов банков (<dir>/<bank>_pod/transactions.csv)
}

// BankSeed описывает один банк для генерации данных
type BankSeed struct {
	Name string
	Seed uint64
}

type GeneratorConfig struct {
	Records int
	Banks   []BankSeed
}

type ModelConfig struct {
	BankName     string
	DataPath     string
	ArtifactPath string
	Seed         uint64
	MaxIter      int
	Alpha        float64
	Tol          float64
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers      []string
	WeightsTopic string
}

type ServerConfig struct {
	HTTPPort int
	GRPCPort int
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "./data"),
		},
		Generator: GeneratorConfig{
			Records: getEnvAsInt("GENERATOR_RECORDS", 3000),
			Banks:   getEnvAsBanks("GENERATOR_BANKS", []BankSeed{{Name: "Bank_A", Seed: 42}, {Name: "Bank_B", Seed: 99}}),
		},
		Model: ModelConfig{
			BankName:     getEnv("MODEL_BANK", "Bank_A"),
			DataPath:     getEnv("MODEL_DATA_PATH", "./data/bank_a_pod/transactions.csv"),
			ArtifactPath: getEnv("MODEL_ARTIFACT_PATH", "model_state.json"),
			Seed:         uint64(getEnvAsInt64("MODEL_SEED", 42)),
			MaxIter:      getEnvAsInt("MODEL_MAX_ITER", 1000),
			Alpha:        getEnvAsFloat("MODEL_ALPHA", 0.0001),
			Tol:          getEnvAsFloat("MODEL_TOL", 0.001),
		},
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/aml_pod.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			WeightsTopic: getEnv("KAFKA_WEIGHTS_TOPIC", "aml.model.weights"),
		},
		Server: ServerConfig{
			HTTPPort: getEnvAsInt("MODEL_SERVICE_PORT", 8090),
			GRPCPort: getEnvAsInt("GRPC_PORT", 50061),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBanks разбирает список вида "Bank_A:42,Bank_B:99".
// Некорректный элемент отбрасывает всю переменную в пользу значения по умолчанию.
func getEnvAsBanks(key string, defaultValue []BankSeed) []BankSeed {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var banks []BankSeed
	for _, item := range strings.Split(valueStr, ",") {
		name, seedStr, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok || name == "" {
			return defaultValue
		}
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return defaultValue
		}
		banks = append(banks, BankSeed{Name: name, Seed: seed})
	}
	return banks
}
