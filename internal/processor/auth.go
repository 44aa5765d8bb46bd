package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/benx421/donorsync/internal/config"
)

// Strategy attaches one authentication scheme to an outbound request.
// An error from Apply counts as a rejected attempt.
type Strategy interface {
	Name() string
	Apply(ctx context.Context, req *http.Request, body []byte) error
}

// Strategy names, in the order they are attempted
const (
	StrategySignedRequest    = "signed-request"
	StrategyOAuth            = "oauth-client-credentials"
	StrategyBearer           = "bearer"
	StrategyRawAuthorization = "raw-authorization"
	StrategyAPIKeyHeader     = "api-key-header"
	StrategyBasicKeyPair     = "basic-key-pair"
)

// APIKeyHeader is the header used by the api-key-header strategy
const APIKeyHeader = "X-API-Key"

// StrategiesFromConfig builds the ordered strategy list for the credentials
// that are present. Strategies without credentials are left out.
func StrategiesFromConfig(cfg config.ProcessorConfig, httpClient *http.Client) []Strategy {
	var strategies []Strategy

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		strategies = append(strategies, NewSignedRequestStrategy(
			cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SigningRegion, cfg.SigningService,
		))
	}

	if cfg.OAuthClientID != "" {
		strategies = append(strategies, NewOAuthStrategy(&clientcredentials.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
			Scopes:       cfg.OAuthScopes,
		}, httpClient))
	}

	if cfg.APIToken != "" {
		strategies = append(strategies,
			HeaderStrategy{name: StrategyBearer, header: "Authorization", value: "Bearer " + cfg.APIToken},
			HeaderStrategy{name: StrategyRawAuthorization, header: "Authorization", value: cfg.APIToken},
			HeaderStrategy{name: StrategyAPIKeyHeader, header: APIKeyHeader, value: cfg.APIToken},
		)
	}

	if cfg.PublicKey != "" && cfg.PrivateKey != "" {
		strategies = append(strategies, BasicStrategy{username: cfg.PublicKey, password: cfg.PrivateKey})
	}

	return strategies
}

// SignedRequestStrategy signs the request with an access key pair using the
// SigV4 canonical request protocol
type SignedRequestStrategy struct {
	signer      *v4.Signer
	now         func() time.Time
	credentials aws.Credentials
	region      string
	service     string
}

// NewSignedRequestStrategy creates a SignedRequestStrategy. Region and
// service default to us-east-1 and execute-api.
func NewSignedRequestStrategy(accessKeyID, secretAccessKey, region, service string) *SignedRequestStrategy {
	if region == "" {
		region = "us-east-1"
	}
	if service == "" {
		service = "execute-api"
	}
	return &SignedRequestStrategy{
		signer: v4.NewSigner(),
		now:    time.Now,
		credentials: aws.Credentials{
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
			Source:          "donorsync",
		},
		region:  region,
		service: service,
	}
}

// Name returns the strategy name
func (s *SignedRequestStrategy) Name() string { return StrategySignedRequest }

// Apply signs req over body
func (s *SignedRequestStrategy) Apply(ctx context.Context, req *http.Request, body []byte) error {
	sum := sha256.Sum256(body)
	payloadHash := hex.EncodeToString(sum[:])
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	if err := s.signer.SignHTTP(ctx, s.credentials, req, payloadHash, s.service, s.region, s.now()); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}

// OAuthStrategy sends a bearer token obtained through the client credentials
// grant. Tokens are cached until they expire.
type OAuthStrategy struct {
	source oauth2.TokenSource
}

// NewOAuthStrategy creates an OAuthStrategy. Token requests go through
// httpClient when it is non-nil.
func NewOAuthStrategy(cfg *clientcredentials.Config, httpClient *http.Client) *OAuthStrategy {
	ctx := context.Background()
	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	return &OAuthStrategy{source: cfg.TokenSource(ctx)}
}

// Name returns the strategy name
func (s *OAuthStrategy) Name() string { return StrategyOAuth }

// Apply sets the Authorization header from the token source
func (s *OAuthStrategy) Apply(_ context.Context, req *http.Request, _ []byte) error {
	token, err := s.source.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain oauth token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}

// HeaderStrategy sets a single static header
type HeaderStrategy struct {
	name   string
	header string
	value  string
}

// NewHeaderStrategy creates a HeaderStrategy
func NewHeaderStrategy(name, header, value string) HeaderStrategy {
	return HeaderStrategy{name: name, header: header, value: value}
}

// Name returns the strategy name
func (s HeaderStrategy) Name() string { return s.name }

// Apply sets the header
func (s HeaderStrategy) Apply(_ context.Context, req *http.Request, _ []byte) error {
	req.Header.Set(s.header, s.value)
	return nil
}

// BasicStrategy sends the public/private key pair as HTTP Basic credentials
type BasicStrategy struct {
	username string
	password string
}

// Name returns the strategy name
func (s BasicStrategy) Name() string { return StrategyBasicKeyPair }

// Apply sets basic auth
func (s BasicStrategy) Apply(_ context.Context, req *http.Request, _ []byte) error {
	req.SetBasicAuth(s.username, s.password)
	return nil
}
