package bedrock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/bytedance/sonic"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/signer"
)

// Transport sends an invocation body to a model and returns the raw response.
// Non-2xx responses are not errors: their bodies are handed back for parsing.
type Transport interface {
	Invoke(ctx context.Context, model string, body []byte) (*llm.InvocationResponse, error)
}

// HTTPTransport posts SigV4-signed requests to the Bedrock invoke endpoint
type HTTPTransport struct {
	signer     *signer.Signer
	httpClient *http.Client
	base       *url.URL
	baseErr    error
}

// NewHTTPTransport creates a transport signing with s. An empty baseURL selects
// https://bedrock.<region>.amazonaws.com. A malformed baseURL, or one without a
// host, makes every Invoke fail with a signing error.
func NewHTTPTransport(s *signer.Signer, httpClient *http.Client, baseURL string) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf(llm.DefaultEndpointPattern, s.Region())
	}

	t := &HTTPTransport{
		signer:     s,
		httpClient: httpClient,
	}
	u, err := url.Parse(baseURL)
	switch {
	case err != nil:
		t.baseErr = llm.NewSigningError(fmt.Sprintf("invalid endpoint %q", baseURL), err)
	case u.Hostname() == "":
		t.baseErr = llm.NewSigningError(fmt.Sprintf("endpoint %q has no host", baseURL), nil)
	default:
		t.base = u
	}
	return t
}

// Endpoint returns the invoke URL of a model, or "" when the base URL is unusable
func (t *HTTPTransport) Endpoint(model string) string {
	if t.base == nil {
		return ""
	}
	return t.base.JoinPath("model", url.PathEscape(model), "invoke").String()
}

// Invoke signs and sends the request
func (t *HTTPTransport) Invoke(ctx context.Context, model string, body []byte) (*llm.InvocationResponse, error) {
	if t.baseErr != nil {
		return nil, t.baseErr
	}

	signed, err := t.signer.Sign(ctx, http.MethodPost, t.Endpoint(model), body)
	if err != nil {
		return nil, err
	}

	req, err := signed.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, llm.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, llm.NewNetworkError(err)
	}

	return &llm.InvocationResponse{StatusCode: resp.StatusCode, Body: payload}, nil
}

// RuntimeInvoker abstracts the bedrock-runtime InvokeModel call for testing
type RuntimeInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// RuntimeTransport invokes models through the bedrock-runtime SDK client, which
// signs requests itself
type RuntimeTransport struct {
	client RuntimeInvoker
}

// NewRuntimeTransport wraps an existing runtime client
func NewRuntimeTransport(client RuntimeInvoker) *RuntimeTransport {
	return &RuntimeTransport{client: client}
}

// NewRuntimeTransportFromCredential builds a bedrock-runtime client for the
// region using cred as static credentials
func NewRuntimeTransportFromCredential(ctx context.Context, cred llm.Credential, region, baseURL string, httpClient *http.Client) (*RuntimeTransport, error) {
	cfg, err := loadAWSConfig(ctx, cred, region, httpClient)
	if err != nil {
		return nil, err
	}

	client := bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		if baseURL != "" {
			o.BaseEndpoint = aws.String(baseURL)
		}
	})
	return NewRuntimeTransport(client), nil
}

// Invoke calls InvokeModel. Service errors are converted into a
// {"message": ...} body so they are parsed like endpoint error responses.
func (t *RuntimeTransport) Invoke(ctx context.Context, model string, body []byte) (*llm.InvocationResponse, error) {
	out, err := t.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		var apiErr smithy.APIError
		if !errors.As(err, &apiErr) {
			return nil, llm.NewNetworkError(err)
		}

		status := 0
		var statusErr interface{ HTTPStatusCode() int }
		if errors.As(err, &statusErr) {
			status = statusErr.HTTPStatusCode()
		}

		payload, mErr := sonic.Marshal(map[string]string{"message": apiErr.ErrorMessage()})
		if mErr != nil {
			return nil, llm.NewNetworkError(err)
		}
		return &llm.InvocationResponse{StatusCode: status, Body: payload}, nil
	}

	return &llm.InvocationResponse{StatusCode: http.StatusOK, Body: out.Body}, nil
}

func loadAWSConfig(ctx context.Context, cred llm.Credential, region string, httpClient *http.Client) (aws.Config, error) {
	if err := cred.Validate(); err != nil {
		return aws.Config{}, err
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cred.AccessKeyID, cred.SecretAccessKey, cred.SessionToken)),
	}
	if httpClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(httpClient))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, &llm.Error{
			Kind:    llm.ErrConfiguration,
			Code:    "aws_config_error",
			Message: fmt.Sprintf("Failed to load AWS configuration: %v", err),
			Cause:   err,
		}
	}
	return cfg, nil
}
