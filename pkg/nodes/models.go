package nodes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/providers/bedrock"
)

// ListModelsMethod is the load method of the model inputs
const ListModelsMethod = "listModels"

type catalogFactory func(ctx context.Context, cred llm.Credential, region string, opts InitOptions) (*bedrock.Catalog, error)

// modelLoader lists the models of a region through the Bedrock catalog. One
// catalog is kept per region and access key so listings stay cached between
// calls. A catalog is rebuilt when the secret or session token of its key
// changes.
type modelLoader struct {
	modality   string
	newCatalog catalogFactory

	mu       sync.Mutex
	catalogs map[string]cachedCatalog
}

type cachedCatalog struct {
	catalog     *bedrock.Catalog
	fingerprint string
}

func newModelLoader(modality string) *modelLoader {
	return &modelLoader{
		modality:   modality,
		newCatalog: defaultCatalog,
		catalogs:   map[string]cachedCatalog{},
	}
}

// secretFingerprint identifies the secret half of a credential without keeping it
func secretFingerprint(cred llm.Credential) string {
	sum := sha256.Sum256([]byte(cred.SecretAccessKey + "\x00" + cred.SessionToken))
	return hex.EncodeToString(sum[:8])
}

func defaultCatalog(ctx context.Context, cred llm.Credential, region string, opts InitOptions) (*bedrock.Catalog, error) {
	return bedrock.NewCatalogFromCredential(ctx, cred, region, "", opts.HTTPClient)
}

func (l *modelLoader) catalog(ctx context.Context, cred llm.Credential, region string, opts InitOptions) (*bedrock.Catalog, error) {
	key := region + "/" + cred.AccessKeyID
	fingerprint := secretFingerprint(cred)

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.catalogs[key]; ok && cached.fingerprint == fingerprint {
		return cached.catalog, nil
	}

	c, err := l.newCatalog(ctx, cred, region, opts)
	if err != nil {
		return nil, err
	}
	l.catalogs[key] = cachedCatalog{catalog: c, fingerprint: fingerprint}
	return c, nil
}

// LoadOptions implements the listModels load method
func (l *modelLoader) LoadOptions(ctx context.Context, method string, data NodeData, opts InitOptions) ([]Option, error) {
	if method != ListModelsMethod {
		return nil, fmt.Errorf("unknown load method %q", method)
	}

	cred, err := resolveCredential(ctx, data, opts.Credentials)
	if err != nil {
		return nil, err
	}
	region := stringInput(data.Inputs, "region", llm.DefaultRegion)

	catalog, err := l.catalog(ctx, cred, region, opts)
	if err != nil {
		return nil, err
	}

	models, err := catalog.ListModels(ctx, l.modality)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(models))
	for _, m := range models {
		label := m.ID
		if m.Name != "" {
			label = fmt.Sprintf("%s (%s)", m.Name, m.ID)
		}
		options = append(options, Option{Label: label, Name: m.ID})
	}
	opts.Logger.Debug().Str("region", region).Str("modality", l.modality).Int("models", len(options)).Msg("loaded model options")
	return options, nil
}
