package secrets

import (
	"context"
	"testing"

	"columbus/config"
	"columbus/internal/domain/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsClient struct {
	calls    int
	failures int
	secrets  map[string]string
}

func (f *fakeSecretsClient) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--

		return nil, errors.New("InvalidRequestException: transient")
	}
	value, ok := f.secrets[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}

	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func newTestResolver(t *testing.T, client *fakeSecretsClient) *Resolver {
	t.Helper()

	r := NewResolver(&config.Config{AWS: &config.AWSConfig{Region: "us-east-1"}})
	r.client = client

	return r
}

func TestResolve_StaticValue(t *testing.T) {
	r := NewResolver(&config.Config{})

	value, err := r.Resolve(context.Background(), config.SecretRef{Source: constants.SecretSourceStatic, Value: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "sk-test", value)

	value, err = r.Resolve(context.Background(), config.SecretRef{Value: "implicit"})
	require.NoError(t, err)
	assert.Equal(t, "implicit", value)
}

func TestResolve_SecretsManagerFieldIsCached(t *testing.T) {
	client := &fakeSecretsClient{secrets: map[string]string{
		"planner/providers": `{"anthropic":"sk-ant","maps":"maps-key"}`,
	}}
	r := newTestResolver(t, client)
	ctx := context.Background()

	value, err := r.Resolve(ctx, config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "planner/providers", Field: "anthropic"})
	require.NoError(t, err)
	assert.Equal(t, "sk-ant", value)

	value, err = r.Resolve(ctx, config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "planner/providers", Field: "maps"})
	require.NoError(t, err)
	assert.Equal(t, "maps-key", value)
	assert.Equal(t, 1, client.calls)
}

func TestResolve_PlainStringSecret(t *testing.T) {
	client := &fakeSecretsClient{secrets: map[string]string{"raw": "just-a-token"}}
	r := newTestResolver(t, client)

	value, err := r.Resolve(context.Background(), config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "raw"})
	require.NoError(t, err)
	assert.Equal(t, "just-a-token", value)
}

func TestResolve_Errors(t *testing.T) {
	r := newTestResolver(t, &fakeSecretsClient{secrets: map[string]string{"doc": `{"a":"b"}`}})
	ctx := context.Background()

	_, err := r.Resolve(ctx, config.SecretRef{Source: "vault"})
	assert.ErrorContains(t, err, "unknown secret source")

	_, err = r.Resolve(ctx, config.SecretRef{Source: constants.SecretSourceSecretsManager})
	assert.ErrorContains(t, err, "secretId is required")

	_, err = r.Resolve(ctx, config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "doc", Field: "missing"})
	assert.ErrorContains(t, err, `no field "missing"`)

	_, err = r.Resolve(ctx, config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "absent", Field: "a"})
	assert.ErrorContains(t, err, "failed to read secret absent")
}

func TestResolve_TransientFailureIsRetried(t *testing.T) {
	client := &fakeSecretsClient{failures: 1, secrets: map[string]string{"planner/providers": `{"maps":"maps-key"}`}}
	r := newTestResolver(t, client)
	ref := config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "planner/providers", Field: "maps"}

	_, err := r.Resolve(context.Background(), ref)
	require.ErrorContains(t, err, "transient")

	value, err := r.Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "maps-key", value)
	assert.Equal(t, 2, client.calls)
}

func TestSecretsClient_RetriesAfterConfigFailure(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newSecretsClient
	t.Cleanup(func() { loadDefaultAWSConfig, newSecretsClient = origLoad, origNew })

	loads := 0
	loadDefaultAWSConfig = func(ctx context.Context, _ ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		loads++
		assert.NoError(t, ctx.Err())
		if loads == 1 {
			return aws.Config{}, errors.New("no credentials")
		}

		return aws.Config{Region: "us-east-1"}, nil
	}
	client := &fakeSecretsClient{secrets: map[string]string{"raw": "token"}}
	newSecretsClient = func(aws.Config, ...func(*secretsmanager.Options)) secretsClient {
		return client
	}

	r := NewResolver(&config.Config{AWS: &config.AWSConfig{Region: "us-east-1"}})
	ref := config.SecretRef{Source: constants.SecretSourceSecretsManager, SecretID: "raw"}

	// A cancelled first caller must not poison the client for later ones.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Resolve(cancelled, ref)
	require.ErrorContains(t, err, "failed to load AWS configuration")

	value, err := r.Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "token", value)
	assert.Equal(t, 2, loads)
}
