package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelgrid/reelgrid/movieapi"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []movieapi.Movie
		want  []Card
	}{
		{
			name: "tmdb_id preferred over id",
			input: []movieapi.Movie{
				{ID: 1, TmdbID: 550, Title: "Fight Club"},
			},
			want: []Card{{TmdbID: 550, Title: "Fight Club"}},
		},
		{
			name: "id fallback",
			input: []movieapi.Movie{
				{ID: 603, Title: "The Matrix"},
			},
			want: []Card{{TmdbID: 603, Title: "The Matrix"}},
		},
		{
			name: "records without id or title dropped",
			input: []movieapi.Movie{
				{Title: "No ID"},
				{ID: 5},
				{ID: 6, Title: "Kept"},
			},
			want: []Card{{TmdbID: 6, Title: "Kept"}},
		},
		{
			name: "absolute poster_url preferred",
			input: []movieapi.Movie{
				{ID: 1, Title: "A", PosterURL: "http://img/a.jpg", PosterPath: "/a.jpg"},
			},
			want: []Card{{TmdbID: 1, Title: "A", PosterURL: "http://img/a.jpg"}},
		},
		{
			name: "relative poster_path absolutized",
			input: []movieapi.Movie{
				{ID: 1, Title: "A", PosterPath: "/a.jpg"},
			},
			want: []Card{{TmdbID: 1, Title: "A", PosterURL: "https://image.tmdb.org/t/p/w500/a.jpg"}},
		},
		{
			name: "no poster stays empty",
			input: []movieapi.Movie{
				{ID: 1, Title: "A"},
			},
			want: []Card{{TmdbID: 1, Title: "A"}},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestCap(t *testing.T) {
	list := make([]Card, 30)
	for i := range list {
		list[i] = Card{TmdbID: int64(i + 1), Title: "Movie"}
	}

	capped := Cap(list, 24)
	assert.Len(t, capped, 24)
	assert.Equal(t, int64(1), capped[0].TmdbID, "order preserved")
	assert.Equal(t, int64(24), capped[23].TmdbID)

	assert.Len(t, Cap(list[:10], 24), 10)
	assert.Len(t, Cap(nil, 24), 0)
}
