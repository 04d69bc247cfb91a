package dataset

// Config holds connection settings for the dataset object store.
type Config struct {
	// Endpoint is the S3-compatible endpoint, e.g. "minio:9000".
	Endpoint string `yaml:"endpoint" envconfig:"DATASET_ENDPOINT"`

	// AccessKey and SecretKey authenticate against the store.
	AccessKey string `yaml:"access_key" envconfig:"DATASET_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" envconfig:"DATASET_SECRET_KEY"`

	// Bucket is the bucket holding dataset objects.
	Bucket string `yaml:"bucket" envconfig:"DATASET_BUCKET"`

	// UseSSL enables TLS towards the endpoint.
	UseSSL bool `yaml:"use_ssl" envconfig:"DATASET_USE_SSL"`

	// Region is optional; most MinIO deployments leave it empty.
	Region string `yaml:"region" envconfig:"DATASET_REGION"`
}
