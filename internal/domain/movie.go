package domain

// Movie carries the fields shared by the popular-list and detail payloads.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"` // null when the movie has no poster
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

// PopularPage is the envelope returned by the popular-movies endpoint.
type PopularPage struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"` // Server order, never re-sorted
}

// PosterURL joins the image base URL with the movie's poster path.
// Returns "" when the movie has no poster; the presentation layer
// substitutes its placeholder image in that case.
func (m Movie) PosterURL(base string) string {
	if m.PosterPath == nil || *m.PosterPath == "" {
		return ""
	}
	return base + *m.PosterPath
}
