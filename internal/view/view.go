package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tmdb/browser/internal/state"
)

// PlaceholderPosterURL is shown for movies without a poster of their own.
const PlaceholderPosterURL = "https://via.placeholder.com/500x750?text=No+Poster"

// View renders whatever the holder currently holds and drives the two load
// operations from user input.
type View struct {
	holder       *state.Holder
	imageBaseURL string
	in           io.Reader
	out          io.Writer
}

func New(holder *state.Holder, imageBaseURL string, in io.Reader, out io.Writer) *View {
	return &View{
		holder:       holder,
		imageBaseURL: imageBaseURL,
		in:           in,
		out:          out,
	}
}

// Run loads the popular list, then loops on user input: a movie id fetches
// details, "list" reloads the list, "quit" exits.
func (v *View) Run(ctx context.Context) error {
	v.holder.LoadPopular(ctx)
	v.renderList()

	scanner := bufio.NewScanner(v.in)
	for {
		fmt.Fprint(v.out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			return nil
		case line == "list":
			v.holder.LoadPopular(ctx)
			v.renderList()
		default:
			id, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(v.out, "Enter a movie id, 'list' or 'quit'")
				continue
			}
			v.holder.LoadDetail(ctx, id)
			v.renderDetail()
		}
	}
}

func (v *View) renderList() {
	snap := v.holder.Snapshot()
	if snap.Err != "" {
		fmt.Fprintln(v.out, snap.Err)
		return
	}

	fmt.Fprintln(v.out, "Popular movies:")
	for _, m := range snap.Movies {
		fmt.Fprintf(v.out, "  %d. %s (%s) ★ %.1f\n", m.ID, m.Title, releaseYear(m.ReleaseDate), m.VoteAverage)
	}
}

func (v *View) renderDetail() {
	snap := v.holder.Snapshot()
	if snap.Err != "" {
		fmt.Fprintln(v.out, snap.Err)
		return
	}
	if snap.Detail == nil {
		fmt.Fprintln(v.out, "No movie selected")
		return
	}

	m := snap.Detail
	poster := m.PosterURL(v.imageBaseURL)
	if poster == "" {
		poster = PlaceholderPosterURL
	}

	fmt.Fprintf(v.out, "%s\n", m.Title)
	fmt.Fprintf(v.out, "Released: %s  Rating: %.1f\n", m.ReleaseDate, m.VoteAverage)
	fmt.Fprintf(v.out, "Poster: %s\n", poster)
	if m.Overview != "" {
		fmt.Fprintf(v.out, "\n%s\n", m.Overview)
	}
}

func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "????"
}
