package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"golang.org/x/sync/singleflight"
)

// Credential source identifiers.
const (
	SourceEnv = "env"
	SourceAWS = "aws"
)

// Credentials holds the API credentials for both platforms.
type Credentials struct {
	// ERPAPIID is the account identifier sent in the api-auth-id header.
	ERPAPIID string `json:"api_id"`
	// ERPAPIKey is the HMAC signing key for ERP requests.
	ERPAPIKey string `json:"api_key"`
	// FSMToken is the bearer token for field-service requests.
	FSMToken string `json:"api_token"`
}

// Config holds configuration for the credential provider.
type Config struct {
	// Source selects where credentials come from (env, aws).
	Source string `mapstructure:"source" default:"env"`
	// SecretID is the Secrets Manager secret holding the JSON credentials.
	SecretID string `mapstructure:"secret_id" default:""`
	// Region is the AWS region of the secret.
	Region string `mapstructure:"region" default:"eu-west-2"`
}

// Provider resolves platform credentials at run time.
type Provider interface {
	Get(ctx context.Context) (Credentials, error)
}

// StaticProvider serves a fixed set of credentials. Intended for tests.
type StaticProvider struct {
	creds Credentials
}

// Static wraps fixed credentials in a Provider.
func Static(creds Credentials) *StaticProvider {
	return &StaticProvider{creds: creds}
}

// Get returns the wrapped credentials.
func (p *StaticProvider) Get(ctx context.Context) (Credentials, error) {
	return p.creds, nil
}

// EnvProvider reads credentials from process environment variables
// (typically populated through the .env file loaded by core/config).
type EnvProvider struct{}

// NewEnvProvider creates an EnvProvider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Get reads SECRETS_API_ID, SECRETS_API_KEY and SECRETS_API_TOKEN.
func (p *EnvProvider) Get(ctx context.Context) (Credentials, error) {
	creds := Credentials{
		ERPAPIID:  os.Getenv("SECRETS_API_ID"),
		ERPAPIKey: os.Getenv("SECRETS_API_KEY"),
		FSMToken:  os.Getenv("SECRETS_API_TOKEN"),
	}
	if creds.ERPAPIKey == "" && creds.FSMToken == "" {
		return Credentials{}, fmt.Errorf("no credentials found in environment")
	}
	return creds, nil
}

// secretsManagerAPI is the subset of the Secrets Manager client used here.
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var _ secretsManagerAPI = (*secretsmanager.Client)(nil)

// AWSProvider reads a JSON credentials document from AWS Secrets Manager.
// The secret is fetched once per process and cached; concurrent first
// fetches are deduplicated with singleflight.
type AWSProvider struct {
	client   secretsManagerAPI
	secretID string

	mu     sync.RWMutex
	cached *Credentials
	sf     singleflight.Group
}

// NewAWSProvider creates an AWSProvider from configuration.
func NewAWSProvider(ctx context.Context, cfg Config) (*AWSProvider, error) {
	if cfg.SecretID == "" {
		return nil, fmt.Errorf("secrets secret_id is required for the aws source")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSProvider{
		client:   secretsmanager.NewFromConfig(awsCfg),
		secretID: cfg.SecretID,
	}, nil
}

// NewAWSProviderWithClient wires an existing client, used by tests.
func NewAWSProviderWithClient(client secretsManagerAPI, secretID string) *AWSProvider {
	return &AWSProvider{client: client, secretID: secretID}
}

// Get returns the cached credentials, fetching them on first use.
func (p *AWSProvider) Get(ctx context.Context) (Credentials, error) {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	result, err, _ := p.sf.Do(p.secretID, func() (interface{}, error) {
		out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(p.secretID),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch secret %s: %w", p.secretID, err)
		}

		var creds Credentials
		if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &creds); err != nil {
			return nil, fmt.Errorf("failed to decode secret %s: %w", p.secretID, err)
		}

		p.mu.Lock()
		p.cached = &creds
		p.mu.Unlock()

		return creds, nil
	})
	if err != nil {
		return Credentials{}, err
	}

	return result.(Credentials), nil
}

// NewProvider builds the provider selected by the configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Source {
	case SourceAWS:
		return NewAWSProvider(ctx, cfg)
	case SourceEnv, "":
		return NewEnvProvider(), nil
	default:
		return nil, fmt.Errorf("unknown secrets source: %s", cfg.Source)
	}
}
