package movieapi

import "strings"

// Movie is a raw movie record as the upstream endpoints return it. Search
// results carry "id"/"poster_path", curated feed and recommendation records
// carry "tmdb_id"/"poster_url"; both shapes decode into this one struct.
type Movie struct {
	ID         int64  `json:"id"`
	TmdbID     int64  `json:"tmdb_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	PosterURL  string `json:"poster_url"`
}

// Genre is a single genre tag on a movie
type Genre struct {
	Name string `json:"name"`
}

// Detail holds the full metadata for a single movie
type Detail struct {
	ID          int64   `json:"id"`
	TmdbID      int64   `json:"tmdb_id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Genres      []Genre `json:"genres"`
	Overview    string  `json:"overview"`
	PosterURL   string  `json:"poster_url"`
	BackdropURL string  `json:"backdrop_url"`
}

// GenreNames returns the genre names comma-joined for display, empty string
// when the movie has no genres.
func (d *Detail) GenreNames() string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
