// Package secrets resolves provider credentials from configuration or AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"sync"

	"columbus/config"
	"columbus/internal/domain/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newSecretsClient = func(cfg aws.Config, optFns ...func(*secretsmanager.Options)) secretsClient {
		return secretsmanager.NewFromConfig(cfg, optFns...)
	}
)

type secretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver returns secret values, caching every Secrets Manager document for
// the lifetime of the process. Failed lookups are not cached.
type Resolver struct {
	awsCfg *config.AWSConfig

	// mu guards client and cache
	mu     sync.Mutex
	client secretsClient
	cache  map[string]map[string]string
}

// NewResolver is the constructor for Resolver. The AWS client is created on first use.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		awsCfg: cfg.AWS,
		cache:  make(map[string]map[string]string),
	}
}

// Resolve returns the value ref points at. An empty ref resolves to "".
func (r *Resolver) Resolve(ctx context.Context, ref config.SecretRef) (string, error) {
	switch ref.Source {
	case "", constants.SecretSourceStatic:
		return ref.Value, nil
	case constants.SecretSourceSecretsManager:
		return r.resolveManaged(ctx, ref)
	default:
		return "", errors.Errorf("unknown secret source %q", ref.Source)
	}
}

func (r *Resolver) resolveManaged(ctx context.Context, ref config.SecretRef) (string, error) {
	if ref.SecretID == "" {
		return "", errors.New("secretId is required for secretsmanager secrets")
	}

	fields, err := r.document(ctx, ref.SecretID)
	if err != nil {
		return "", err
	}

	value, ok := fields[ref.Field]
	if !ok {
		return "", errors.Errorf("secret %s has no field %q", ref.SecretID, ref.Field)
	}

	return value, nil
}

// document fetches and caches a secret. Plain string secrets are exposed under the empty field name.
func (r *Resolver) document(ctx context.Context, secretID string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields, ok := r.cache[secretID]; ok {
		return fields, nil
	}

	client, err := r.secretsClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read secret %s", secretID)
	}

	raw := aws.ToString(out.SecretString)
	fields := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		fields = map[string]string{"": raw}
	}
	r.cache[secretID] = fields

	return fields, nil
}

// secretsClient must be called with r.mu held. The client is kept only once it
// was built successfully; setup does not inherit the caller's cancellation.
func (r *Resolver) secretsClient(ctx context.Context) (secretsClient, error) {
	if r.client != nil {
		return r.client, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if r.awsCfg != nil && r.awsCfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(r.awsCfg.Region))
	}
	if r.awsCfg != nil && r.awsCfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			r.awsCfg.AccessKeyID,
			r.awsCfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(context.WithoutCancel(ctx), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	r.client = newSecretsClient(awsCfg, func(o *secretsmanager.Options) {
		if r.awsCfg != nil && r.awsCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(r.awsCfg.Endpoint)
		}
	})

	return r.client, nil
}
