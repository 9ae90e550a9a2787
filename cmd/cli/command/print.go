package command

import (
	"fmt"
	"io"
	"strings"

	"pokereview/internal/microservices/http-api/dto"
)

var separator = strings.Repeat("-", 50)

func printPokemon(w io.Writer, p dto.PokemonDTO) {
	fmt.Fprintf(w, "ID: %d\n", p.ID)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	if !p.BirthDate.IsZero() {
		fmt.Fprintf(w, "Birth Date: %s\n", p.BirthDate.Format("2006-01-02"))
	}
}

func printOwner(w io.Writer, o dto.OwnerDTO) {
	fmt.Fprintf(w, "ID: %d\n", o.ID)
	fmt.Fprintf(w, "Name: %s %s\n", o.FirstName, o.LastName)
	if o.Gender != "" {
		fmt.Fprintf(w, "Gender: %s\n", o.Gender)
	}
}

func printReviewer(w io.Writer, r dto.ReviewerDTO) {
	fmt.Fprintf(w, "ID: %d\n", r.ID)
	fmt.Fprintf(w, "Name: %s %s\n", r.FirstName, r.LastName)
}

func printReview(w io.Writer, r dto.ReviewDTO) {
	fmt.Fprintf(w, "ID: %d\n", r.ID)
	fmt.Fprintf(w, "Title: %s\n", r.Title)
	fmt.Fprintf(w, "Rating: %d/5\n", r.Rating)
	if r.Text != "" {
		fmt.Fprintf(w, "Text: %s\n", r.Text)
	}
}

// printNamed prints the id/name pairs shared by categories and countries.
func printNamed(w io.Writer, id int64, name string) {
	fmt.Fprintf(w, "ID: %d\n", id)
	fmt.Fprintf(w, "Name: %s\n", name)
}

// printList prints a header, then every item followed by a separator.
func printList[T any](w io.Writer, noun string, items []T, print func(io.Writer, T)) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", noun)
		return
	}
	fmt.Fprintf(w, "Found %d %s:\n\n", len(items), noun)
	for _, item := range items {
		print(w, item)
		fmt.Fprintln(w, separator)
	}
}
