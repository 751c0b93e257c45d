package enrich

import "github.com/otakuverse/otakuverse-client/internal/domain"

// fallbackImages maps each content type to its static placeholder.
var fallbackImages = map[domain.ContentType]string{
	domain.TypeAnime:       "https://via.placeholder.com/300x400?text=Anime",
	domain.TypeMovies:      "https://via.placeholder.com/300x400?text=Movie",
	domain.TypeManga:       "https://via.placeholder.com/300x400?text=Manga",
	domain.TypeGames:       "https://via.placeholder.com/300x400?text=Game",
	domain.TypeWebSeries:   "https://via.placeholder.com/300x400?text=Web+Series",
	domain.TypeComics:      "https://via.placeholder.com/300x400?text=Comic",
	domain.TypeNovels:      "https://via.placeholder.com/300x400?text=Novel",
	domain.TypeLightNovels: "https://via.placeholder.com/300x400?text=Light+Novel",
	domain.TypeManhwa:      "https://via.placeholder.com/300x400?text=Manhwa",
}

// FallbackImage returns the static placeholder URL for a content type.
// Pure: no network or cache interaction. Unknown types get the anime
// placeholder.
func FallbackImage(ctype domain.ContentType) string {
	if img, ok := fallbackImages[ctype]; ok {
		return img
	}
	return fallbackImages[domain.TypeAnime]
}
