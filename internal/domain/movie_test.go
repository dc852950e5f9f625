package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string {
	return &s
}

func TestPosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p/w500"

	tests := []struct {
		name  string
		movie Movie
		want  string
	}{
		{
			name:  "path present",
			movie: Movie{PosterPath: strptr("/abc.jpg")},
			want:  "https://image.tmdb.org/t/p/w500/abc.jpg",
		},
		{
			name:  "path nil",
			movie: Movie{PosterPath: nil},
			want:  "",
		},
		{
			name:  "path empty string",
			movie: Movie{PosterPath: strptr("")},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.movie.PosterURL(base))
		})
	}
}

func TestPopularPageDecode(t *testing.T) {
	body := `{"page":1,"results":[{"id":1,"title":"A","overview":"","poster_path":null,"vote_average":7.5,"release_date":"2020-01-01"}]}`

	var page PopularPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	require.Len(t, page.Results, 1)
	m := page.Results[0]
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "A", m.Title)
	assert.Empty(t, m.Overview)
	assert.Nil(t, m.PosterPath)
	assert.Equal(t, 7.5, m.VoteAverage)
	assert.Equal(t, "2020-01-01", m.ReleaseDate)
	assert.Empty(t, m.PosterURL("https://image.tmdb.org/t/p/w500"))
}
