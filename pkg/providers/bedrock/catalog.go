package bedrock

import (
	"context"
	"net/http"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/patrickmn/go-cache"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

// Output modalities accepted by Catalog.ListModels
const (
	ModalityText      = string(types.ModelModalityText)
	ModalityEmbedding = string(types.ModelModalityEmbedding)
)

// FoundationModelLister abstracts the Bedrock control-plane call for testing
type FoundationModelLister interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// Catalog lists the foundation models of a region. Listings are cached for
// llm.DefaultCatalogRefreshInterval.
type Catalog struct {
	lister FoundationModelLister
	region string
	cache  *cache.Cache
}

// NewCatalog creates a catalog on top of an existing lister
func NewCatalog(lister FoundationModelLister, region string) *Catalog {
	return &Catalog{
		lister: lister,
		region: region,
		cache:  cache.New(llm.DefaultCatalogRefreshInterval, 2*llm.DefaultCatalogRefreshInterval),
	}
}

// NewCatalogFromCredential creates a catalog backed by a Bedrock control-plane
// client using cred as static credentials
func NewCatalogFromCredential(ctx context.Context, cred llm.Credential, region, baseURL string, httpClient *http.Client) (*Catalog, error) {
	cfg, err := loadAWSConfig(ctx, cred, region, httpClient)
	if err != nil {
		return nil, err
	}

	client := bedrock.NewFromConfig(cfg, func(o *bedrock.Options) {
		if baseURL != "" {
			o.BaseEndpoint = aws.String(baseURL)
		}
	})
	return NewCatalog(client, region), nil
}

// ListModels returns the models producing the given output modality, sorted by
// id. An empty modality lists every model.
func (c *Catalog) ListModels(ctx context.Context, outputModality string) ([]llm.ModelInfo, error) {
	key := c.region + "/" + outputModality
	if cached, found := c.cache.Get(key); found {
		return cached.([]llm.ModelInfo), nil
	}

	input := &bedrock.ListFoundationModelsInput{}
	if outputModality != "" {
		input.ByOutputModality = types.ModelModality(outputModality)
	}

	out, err := c.lister.ListFoundationModels(ctx, input)
	if err != nil {
		return nil, llm.NewNetworkError(err)
	}

	models := make([]llm.ModelInfo, 0, len(out.ModelSummaries))
	for _, summary := range out.ModelSummaries {
		models = append(models, convertSummary(summary))
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })

	c.cache.SetDefault(key, models)
	return models, nil
}

// Invalidate drops every cached listing
func (c *Catalog) Invalidate() {
	c.cache.Flush()
}

func convertSummary(s types.FoundationModelSummary) llm.ModelInfo {
	info := llm.ModelInfo{
		ID:        aws.ToString(s.ModelId),
		Name:      aws.ToString(s.ModelName),
		Provider:  aws.ToString(s.ProviderName),
		Streaming: aws.ToBool(s.ResponseStreamingSupported),
	}
	for _, m := range s.InputModalities {
		info.InputModalities = append(info.InputModalities, string(m))
	}
	for _, m := range s.OutputModalities {
		info.OutputModalities = append(info.OutputModalities, string(m))
	}
	return info
}
