package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	JWTSecret     string
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGO_URI"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_KEY"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "products"
	}

	if brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION")); err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}
