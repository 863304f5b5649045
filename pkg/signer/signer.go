// Package signer signs Bedrock HTTP requests with AWS Signature Version 4.
//
// A Signer is bound to one credential pair, one region and one service name
// ("bedrock" unless overridden). Missing credentials or an empty region are
// reported when the Signer is built; malformed endpoints are reported by Sign,
// before anything is sent.
package signer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentSHA256 = "X-Amz-Content-Sha256"
	HeaderAmzDate       = "X-Amz-Date"
	HeaderAuthorization = "Authorization"

	contentTypeJSON = "application/json"
)

// SignedRequest is a request ready to be sent. It is created per call and
// discarded once the response has been read.
type SignedRequest struct {
	URL    string
	Method string
	Host   string
	Header http.Header
	Body   []byte
}

// HTTPRequest materializes the signed request
func (r *SignedRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, llm.NewSigningError("failed to build signed request", err)
	}
	req.Header = r.Header.Clone()
	req.Host = r.Host
	return req, nil
}

// Signer signs requests for a fixed region and service
type Signer struct {
	credentials aws.CredentialsProvider
	region      string
	service     string
	signer      *v4.Signer
	now         func() time.Time
}

// Option configures a Signer
type Option func(*Signer)

// WithService overrides the signing service name
func WithService(service string) Option {
	return func(s *Signer) {
		s.service = service
	}
}

// WithClock sets the clock used for the signing time
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// New creates a Signer for the given credential and region
func New(cred llm.Credential, region string, opts ...Option) (*Signer, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if region == "" {
		return nil, llm.NewConfigurationError(llm.CodeInvalidConfig, "region is required for signing")
	}

	s := &Signer{
		credentials: credentials.NewStaticCredentialsProvider(cred.AccessKeyID, cred.SecretAccessKey, cred.SessionToken),
		region:      region,
		service:     llm.DefaultSigningService,
		signer:      v4.NewSigner(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Region returns the signing region
func (s *Signer) Region() string { return s.region }

// Service returns the signing service name
func (s *Signer) Service() string { return s.service }

// Sign builds a JSON request for rawURL and signs it. The returned headers
// carry Content-Type, X-Amz-Content-Sha256, X-Amz-Date and Authorization.
func (s *Signer) Sign(ctx context.Context, method, rawURL string, body []byte) (*SignedRequest, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, llm.NewSigningError(fmt.Sprintf("invalid endpoint %q", rawURL), err)
	}
	if u.Hostname() == "" {
		return nil, llm.NewSigningError(fmt.Sprintf("endpoint %q has no host", rawURL), nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, llm.NewSigningError(fmt.Sprintf("invalid request for %q", rawURL), err)
	}
	req.Host = u.Host
	req.Header.Set(HeaderContentType, contentTypeJSON)

	payloadHash := hashPayload(body)
	req.Header.Set(HeaderContentSHA256, payloadHash)

	creds, err := s.credentials.Retrieve(ctx)
	if err != nil {
		return nil, llm.NewSigningError("failed to retrieve aws credentials", err)
	}

	if err := s.signer.SignHTTP(ctx, creds, req, payloadHash, s.service, s.region, s.now()); err != nil {
		return nil, llm.NewSigningError("failed to sign request", err)
	}

	return &SignedRequest{
		URL:    req.URL.String(),
		Method: method,
		Host:   req.Host,
		Header: req.Header,
		Body:   body,
	}, nil
}

func hashPayload(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
