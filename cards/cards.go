// Package cards normalizes the upstream record shapes into the single card
// form the grid renders: movie id, title, poster URL.
package cards

import (
	"github.com/reelgrid/reelgrid/movieapi"
)

// posterBaseURL is the TMDB image host used to absolutize relative poster
// paths from search results.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// Card is the normalized display unit for a movie
type Card struct {
	TmdbID    int64
	Title     string
	PosterURL string
}

// Normalize maps raw upstream records into Cards. Records that resolve no
// identifier or carry no title are dropped; a missing poster is not an error,
// the renderer shows a placeholder instead.
func Normalize(movies []movieapi.Movie) []Card {
	out := make([]Card, 0, len(movies))
	for _, m := range movies {
		id := m.TmdbID
		if id == 0 {
			id = m.ID
		}
		if id == 0 || m.Title == "" {
			continue
		}

		poster := m.PosterURL
		if poster == "" && m.PosterPath != "" {
			poster = posterBaseURL + m.PosterPath
		}

		out = append(out, Card{
			TmdbID:    id,
			Title:     m.Title,
			PosterURL: poster,
		})
	}
	return out
}

// Cap truncates the card list to at most n entries. This is a presentation
// limit, upstream order is preserved.
func Cap(list []Card, n int) []Card {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
