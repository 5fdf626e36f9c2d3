package store

// Backend identifiers for the snapshot store.
const (
	BackendDynamoDB = "dynamodb"
	BackendMySQL    = "mysql"
)

// Config holds configuration for the snapshot store.
type Config struct {
	// Backend selects the store implementation (dynamodb, mysql).
	Backend string `mapstructure:"backend" default:"dynamodb"`
	// Table is the DynamoDB table name.
	Table string `mapstructure:"table" default:"purchase-orders"`
	// Region is the AWS region for the DynamoDB backend.
	Region string `mapstructure:"region" default:"eu-west-2"`
	// Endpoint overrides the DynamoDB endpoint (local testing).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey and SecretKey bypass the default credential chain when both
	// are set, typically together with Endpoint for a local emulator.
	AccessKey string `mapstructure:"access_key" default:""`
	SecretKey string `mapstructure:"secret_key" default:""`

	// MySQL connection settings, used when Backend is mysql.
	Host           string `mapstructure:"host" default:"localhost"`
	Port           int    `mapstructure:"port" default:"3306"`
	User           string `mapstructure:"user" default:"root"`
	Password       string `mapstructure:"password" default:""`
	Name           string `mapstructure:"name" default:"inventory_bridge"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendDynamoDB, BackendMySQL:
		return true
	default:
		return false
	}
}
