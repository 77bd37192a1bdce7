package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, 3000, cfg.Generator.Records)
	assert.Equal(t, []BankSeed{{Name: "Bank_A", Seed: 42}, {Name: "Bank_B", Seed: 99}}, cfg.Generator.Banks)
	assert.Equal(t, "model_state.json", cfg.Model.ArtifactPath)
	assert.Equal(t, uint64(42), cfg.Model.Seed)
	assert.Equal(t, 1000, cfg.Model.MaxIter)
	assert.InDelta(t, 0.0001, cfg.Model.Alpha, 1e-12)
	assert.Equal(t, "aml.model.weights", cfg.Kafka.WeightsTopic)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/pods")
	t.Setenv("GENERATOR_RECORDS", "500")
	t.Setenv("GENERATOR_BANKS", "Bank_C:7, Bank_D:8")
	t.Setenv("MODEL_SEED", "11")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg := Load()

	assert.Equal(t, "/tmp/pods", cfg.Data.Dir)
	assert.Equal(t, 500, cfg.Generator.Records)
	assert.Equal(t, []BankSeed{{Name: "Bank_C", Seed: 7}, {Name: "Bank_D", Seed: 8}}, cfg.Generator.Banks)
	assert.Equal(t, uint64(11), cfg.Model.Seed)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestGetEnvAsBanks_Invalid(t *testing.T) {
	def := []BankSeed{{Name: "Bank_A", Seed: 42}}

	t.Setenv("TEST_BANKS", "Bank_A")
	assert.Equal(t, def, getEnvAsBanks("TEST_BANKS", def))

	t.Setenv("TEST_BANKS", "Bank_A:abc")
	assert.Equal(t, def, getEnvAsBanks("TEST_BANKS", def))
}

func TestGetEnvAsNumbers_InvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_INT", "x")
	t.Setenv("TEST_FLOAT", "y")

	assert.Equal(t, 5, getEnvAsInt("TEST_INT", 5))
	assert.Equal(t, int64(6), getEnvAsInt64("TEST_INT", 6))
	assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT", 0.5))
}
