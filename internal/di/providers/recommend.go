package providers

import (
	"github.com/samber/do/v2"

	"github.com/otakuverse/otakuverse-client/internal/config"
	"github.com/otakuverse/otakuverse-client/internal/enrich"
	"github.com/otakuverse/otakuverse-client/internal/logger"
	"github.com/otakuverse/otakuverse-client/internal/recommend"
	"github.com/otakuverse/otakuverse-client/internal/validation"
)

// ProvideRecommendClient provides the recommendation backend client,
// with item normalization falling back to the enrichment placeholder
// images.
func ProvideRecommendClient(i do.Injector) (*recommend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)

	client := recommend.New(recommend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, v, enrich.FallbackImage, log.Logger)

	log.Info("Recommendation client initialized", "backend", cfg.Backend.BaseURL)

	return client, nil
}
