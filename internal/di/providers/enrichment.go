package providers

import (
	"github.com/samber/do/v2"

	"github.com/otakuverse/otakuverse-client/internal/config"
	"github.com/otakuverse/otakuverse-client/internal/enrich"
	"github.com/otakuverse/otakuverse-client/internal/logger"
	"github.com/otakuverse/otakuverse-client/internal/provider/jikan"
	"github.com/otakuverse/otakuverse-client/internal/provider/omdb"
)

// OMDBClientHandle wraps the OMDb client with shutdown capability.
type OMDBClientHandle struct {
	*omdb.Client
}

// Shutdown implements do.Shutdownable.
func (h *OMDBClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideOMDBClient provides the film/series provider client.
func ProvideOMDBClient(i do.Injector) (*OMDBClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := omdb.New(omdb.Options{
		BaseURL: cfg.Providers.OMDBBaseURL,
		APIKey:  cfg.Providers.OMDBAPIKey,
		Timeout: cfg.Providers.Timeout,
	}, log.Logger)

	if !client.Configured() {
		log.Warn("OMDb API key not configured, film/series enrichment disabled")
	}

	return &OMDBClientHandle{Client: client}, nil
}

// JikanClientHandle wraps the Jikan client with shutdown capability.
type JikanClientHandle struct {
	*jikan.Client
}

// Shutdown implements do.Shutdownable.
func (h *JikanClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideJikanClient provides the anime/manga provider client.
func ProvideJikanClient(i do.Injector) (*JikanClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := jikan.New(jikan.Options{
		BaseURL: cfg.Providers.JikanBaseURL,
		Timeout: cfg.Providers.Timeout,
	}, log.Logger)

	return &JikanClientHandle{Client: client}, nil
}

// ProvideEnrichService provides the enrichment cache over both provider
// clients.
func ProvideEnrichService(i do.Injector) (*enrich.Service, error) {
	log := do.MustInvoke[*logger.Logger](i)
	omdbHandle := do.MustInvoke[*OMDBClientHandle](i)
	jikanHandle := do.MustInvoke[*JikanClientHandle](i)

	return enrich.NewService(omdbHandle.Client, jikanHandle.Client, log.Logger), nil
}
