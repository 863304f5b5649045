package nodes

import (
	"context"
	"fmt"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

// Credential field names of the awsApi credential
const (
	CredentialName      = "awsApi"
	CredentialKeyField  = "awsKey"
	CredentialSecret    = "awsSecret"
	CredentialSessionID = "awsSession"
)

// CredentialDescriptor describes a credential type the host stores on behalf of nodes
type CredentialDescriptor struct {
	Label   string  `json:"label"`
	Name    string  `json:"name"`
	Version float64 `json:"version"`
	Inputs  []Param `json:"inputs"`
}

// AWSCredential is the descriptor of the awsApi credential
var AWSCredential = CredentialDescriptor{
	Label:   "AWS API",
	Name:    CredentialName,
	Version: 1.0,
	Inputs: []Param{
		{Label: "AWS Key", Name: CredentialKeyField, Type: ParamString},
		{Label: "AWS Secret", Name: CredentialSecret, Type: ParamPassword},
		{Label: "AWS Session Token", Name: CredentialSessionID, Type: ParamPassword, Optional: true},
	},
}

var credentialParam = Param{
	Label:           "AWS Credential",
	Name:            "credential",
	Type:            ParamCredential,
	CredentialNames: []string{CredentialName},
}

// resolveCredential loads the credential record of the node and extracts the
// key pair. Fields missing from the record are looked up in the node inputs.
func resolveCredential(ctx context.Context, data NodeData, resolver CredentialResolver) (llm.Credential, error) {
	record := map[string]string{}
	if resolver != nil {
		fields, err := resolver.Resolve(ctx, data.Credential)
		if err != nil {
			return llm.Credential{}, fmt.Errorf("resolving credential %q: %w", data.Credential, err)
		}
		if fields != nil {
			record = fields
		}
	}

	param := func(name string) string {
		if v := record[name]; v != "" {
			return v
		}
		return stringInput(data.Inputs, name, "")
	}

	cred := llm.Credential{
		AccessKeyID:     param(CredentialKeyField),
		SecretAccessKey: param(CredentialSecret),
		SessionToken:    param(CredentialSessionID),
	}
	if cred.AccessKeyID == "" {
		return cred, llm.NewConfigurationError(llm.CodeMissingCredentials, CredentialKeyField+" not found")
	}
	if cred.SecretAccessKey == "" {
		return cred, llm.NewConfigurationError(llm.CodeMissingCredentials, CredentialSecret+" not found")
	}
	return cred, nil
}
