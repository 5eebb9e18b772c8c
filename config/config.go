package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	// Uploads is the local staging side of file handling: multipart
	// uploads land under Root before the migrator moves them to the
	// durable store.
	Uploads struct {
		Root string
	}
	// Storage points at the durable object store. CredentialsB64 is a
	// base64-encoded JSON blob holding the endpoint and key pair, so the
	// whole credential fits in a single env var / secret entry.
	Storage struct {
		Bucket         string
		ProjectID      string
		CredentialsB64 string
		UseSSL         bool
	}
	StorageCredentials struct {
		Endpoint        string `json:"endpoint"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App     APP
		DB      DB
		Uploads Uploads
		Storage Storage
		MQ      MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "jobboard-api"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", ""),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	uploads := Uploads{
		Root: getEnv("UPLOADS_ROOT", "."),
	}
	storage := Storage{
		Bucket:         getEnv("STORAGE_BUCKET", ""),
		ProjectID:      getEnv("STORAGE_PROJECT_ID", ""),
		CredentialsB64: getEnv("STORAGE_CREDENTIALS_B64", ""),
		UseSSL:         getEnv("STORAGE_USE_SSL", "true") == "true",
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	return Config{
		App:     app,
		DB:      db,
		Uploads: uploads,
		Storage: storage,
		MQ:      mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

// Validate reports every missing storage key at once so an operator can
// fix the environment in a single pass.
func (s Storage) Validate() error {
	var missing []string
	if s.Bucket == "" {
		missing = append(missing, "STORAGE_BUCKET")
	}
	if s.ProjectID == "" {
		missing = append(missing, "STORAGE_PROJECT_ID")
	}
	if s.CredentialsB64 == "" {
		missing = append(missing, "STORAGE_CREDENTIALS_B64")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete storage config, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s Storage) Credentials() (StorageCredentials, error) {
	var creds StorageCredentials

	raw, err := base64.StdEncoding.DecodeString(s.CredentialsB64)
	if err != nil {
		return creds, fmt.Errorf("decode storage credentials: %w", err)
	}
	if err = json.Unmarshal(raw, &creds); err != nil {
		return creds, fmt.Errorf("parse storage credentials: %w", err)
	}
	if creds.Endpoint == "" || creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return creds, fmt.Errorf("storage credentials must contain endpoint, access_key_id and secret_access_key")
	}

	return creds, nil
}
