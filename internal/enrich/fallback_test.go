package enrich_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/enrich"
)

func TestFallbackImagePerType(t *testing.T) {
	seen := make(map[string]bool)
	for _, ctype := range domain.ContentTypes {
		url := enrich.FallbackImage(ctype)
		assert.True(t, strings.HasPrefix(url, "https://via.placeholder.com/300x400"), "type %s", ctype)
		seen[url] = true
	}
	// Every type gets its own placeholder.
	assert.Len(t, seen, len(domain.ContentTypes))
}

func TestFallbackImageUnknownType(t *testing.T) {
	url := enrich.FallbackImage(domain.ContentType("vtuber_clips"))
	assert.Equal(t, enrich.FallbackImage(domain.TypeAnime), url)
}
