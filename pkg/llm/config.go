// Configuration types for Bedrock invocations
package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultRegion          = "us-east-1"
	DefaultModel           = "anthropic.claude-v2"
	DefaultEmbeddingModel  = "amazon.titan-e1t-medium"
	DefaultTemperature     = 0.7
	DefaultMaxTokens       = 200
	DefaultTopK            = 250
	DefaultTopP            = 0.5
	DefaultSigningService  = "bedrock"
	DefaultEndpointPattern = "https://bedrock.%s.amazonaws.com"
)

// Credential is an AWS access key pair. It is supplied by the host for each
// client and never persisted.
type Credential struct {
	AccessKeyID     string `json:"access_key_id" validate:"required"`
	SecretAccessKey string `json:"secret_access_key" validate:"required"`
	SessionToken    string `json:"session_token,omitempty"`
}

// String hides the secret parts of the credential
func (c Credential) String() string {
	id := c.AccessKeyID
	if len(id) > 4 {
		id = id[:4] + strings.Repeat("*", len(id)-4)
	}
	return fmt.Sprintf("Credential{%s}", id)
}

// InvocationConfig holds the model parameters of a client. It is immutable once
// the client has been built.
type InvocationConfig struct {
	Region        string   `json:"region" validate:"required"`
	Model         string   `json:"model" validate:"required"`
	Temperature   *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0"`
	MaxTokens     *int     `json:"max_tokens,omitempty" validate:"omitempty,gt=0"`
	TopK          *int     `json:"top_k,omitempty" validate:"omitempty,gte=0"`
	TopP          *float64 `json:"top_p,omitempty" validate:"omitempty,gte=0,lte=1"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

// TemperatureOrDefault returns the configured temperature or DefaultTemperature
func (c InvocationConfig) TemperatureOrDefault() float64 {
	if c.Temperature != nil {
		return *c.Temperature
	}
	return DefaultTemperature
}

// MaxTokensOrDefault returns the configured token limit or DefaultMaxTokens
func (c InvocationConfig) MaxTokensOrDefault() int {
	if c.MaxTokens != nil {
		return *c.MaxTokens
	}
	return DefaultMaxTokens
}

// TopKOrDefault returns the configured top_k or DefaultTopK
func (c InvocationConfig) TopKOrDefault() int {
	if c.TopK != nil {
		return *c.TopK
	}
	return DefaultTopK
}

// TopPOrDefault returns the configured top_p or DefaultTopP
func (c InvocationConfig) TopPOrDefault() float64 {
	if c.TopP != nil {
		return *c.TopP
	}
	return DefaultTopP
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration, returning a configuration error
func (c InvocationConfig) Validate() error {
	return validateStruct(c, CodeInvalidConfig)
}

// Validate checks that both key fields are present
func (c Credential) Validate() error {
	return validateStruct(c, CodeMissingCredentials)
}

func validateStruct(v interface{}, code string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	} else {
		fields = append(fields, err.Error())
	}

	e := NewConfigurationError(code, "invalid fields: "+strings.Join(fields, ", "))
	e.Cause = err
	return e
}

// Float64 returns a pointer to v
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

// CredentialFromEnv reads the standard AWS credential environment variables
func CredentialFromEnv() Credential {
	return Credential{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	}
}

// ConfigFromEnv builds an InvocationConfig from the environment.
//
// BEDROCK_REGION takes priority over AWS_REGION. Numeric parameters that fail
// to parse are left unset so the defaults apply.
func ConfigFromEnv() InvocationConfig {
	config := InvocationConfig{
		Region: DefaultRegion,
		Model:  DefaultModel,
	}

	if region := os.Getenv("BEDROCK_REGION"); region != "" {
		config.Region = region
	} else if region := os.Getenv("AWS_REGION"); region != "" {
		config.Region = region
	}
	if model := os.Getenv("BEDROCK_MODEL"); model != "" {
		config.Model = model
	}

	if v, err := strconv.ParseFloat(os.Getenv("BEDROCK_TEMPERATURE"), 64); err == nil {
		config.Temperature = &v
	}
	if v, err := strconv.Atoi(os.Getenv("BEDROCK_MAX_TOKENS")); err == nil {
		config.MaxTokens = &v
	}
	if v, err := strconv.Atoi(os.Getenv("BEDROCK_TOP_K")); err == nil {
		config.TopK = &v
	}
	if v, err := strconv.ParseFloat(os.Getenv("BEDROCK_TOP_P"), 64); err == nil {
		config.TopP = &v
	}

	return config
}
