package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	secret string
	err    error
	calls  int
}

func (f *fakeSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.secret)}, nil
}

func TestAWSProvider_Get(t *testing.T) {
	fake := &fakeSecretsManager{secret: `{"api_id":"id-1","api_key":"key-1","api_token":"tok-1"}`}
	p := NewAWSProviderWithClient(fake, "bridge/credentials")

	creds, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id-1", creds.ERPAPIID)
	assert.Equal(t, "key-1", creds.ERPAPIKey)
	assert.Equal(t, "tok-1", creds.FSMToken)
}

func TestAWSProvider_CachesAcrossCalls(t *testing.T) {
	fake := &fakeSecretsManager{secret: `{"api_key":"key-1"}`}
	p := NewAWSProviderWithClient(fake, "bridge/credentials")

	for i := 0; i < 3; i++ {
		_, err := p.Get(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, fake.calls)
}

func TestAWSProvider_FetchError(t *testing.T) {
	fake := &fakeSecretsManager{err: errors.New("denied")}
	p := NewAWSProviderWithClient(fake, "bridge/credentials")

	_, err := p.Get(context.Background())
	assert.Error(t, err)
}

func TestEnvProvider_Get(t *testing.T) {
	t.Setenv("SECRETS_API_ID", "id-env")
	t.Setenv("SECRETS_API_KEY", "key-env")
	t.Setenv("SECRETS_API_TOKEN", "tok-env")

	creds, err := NewEnvProvider().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id-env", creds.ERPAPIID)
	assert.Equal(t, "key-env", creds.ERPAPIKey)
	assert.Equal(t, "tok-env", creds.FSMToken)
}

func TestEnvProvider_Missing(t *testing.T) {
	t.Setenv("SECRETS_API_ID", "")
	t.Setenv("SECRETS_API_KEY", "")
	t.Setenv("SECRETS_API_TOKEN", "")

	_, err := NewEnvProvider().Get(context.Background())
	assert.Error(t, err)
}

func TestNewProvider_UnknownSource(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Source: "vault"})
	assert.Error(t, err)
}
