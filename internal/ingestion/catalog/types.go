package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"pokereview/internal/microservices/http-api/models"
)

const dateLayout = "2006-01-02"

// Catalog is the seed file format. Relations are expressed by natural name:
// owners by first name, reviewers by last name, the rest by name or title.
type Catalog struct {
	Countries  []NamedEntry    `json:"countries"`
	Categories []NamedEntry    `json:"categories"`
	Reviewers  []ReviewerEntry `json:"reviewers"`
	Owners     []OwnerEntry    `json:"owners"`
	Pokemon    []PokemonEntry  `json:"pokemon"`
	Reviews    []ReviewEntry   `json:"reviews"`
}

type NamedEntry struct {
	Name string `json:"name"`
}

type ReviewerEntry struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type OwnerEntry struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
}

type PokemonEntry struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Owner     string `json:"owner"`
	Category  string `json:"category"`
}

type ReviewEntry struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Reviewer string `json:"reviewer"`
	Pokemon  string `json:"pokemon"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every entry before anything is written, so a bad file
// imports nothing.
func (c *Catalog) Validate() error {
	var errs []error
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	for i, e := range c.Countries {
		if blank(e.Name) {
			errs = append(errs, fmt.Errorf("countries[%d]: name is required", i))
		}
	}
	for i, e := range c.Categories {
		if blank(e.Name) {
			errs = append(errs, fmt.Errorf("categories[%d]: name is required", i))
		}
	}
	for i, e := range c.Reviewers {
		if blank(e.LastName) {
			errs = append(errs, fmt.Errorf("reviewers[%d]: last_name is required", i))
		}
	}
	for i, e := range c.Owners {
		if blank(e.FirstName) || blank(e.Country) {
			errs = append(errs, fmt.Errorf("owners[%d]: first_name and country are required", i))
		}
	}
	for i, e := range c.Pokemon {
		if blank(e.Name) || blank(e.Owner) || blank(e.Category) {
			errs = append(errs, fmt.Errorf("pokemon[%d]: name, owner and category are required", i))
		}
		if e.BirthDate != "" {
			if _, err := time.Parse(dateLayout, e.BirthDate); err != nil {
				errs = append(errs, fmt.Errorf("pokemon[%d]: birth_date: %w", i, err))
			}
		}
	}
	for i, e := range c.Reviews {
		if blank(e.Title) || blank(e.Reviewer) || blank(e.Pokemon) {
			errs = append(errs, fmt.Errorf("reviews[%d]: title, reviewer and pokemon are required", i))
		}
		if e.Rating < models.MinRating || e.Rating > models.MaxRating {
			errs = append(errs, fmt.Errorf("reviews[%d]: rating %d out of range", i, e.Rating))
		}
	}
	return errors.Join(errs...)
}

func (e PokemonEntry) birthDate() time.Time {
	if e.BirthDate == "" {
		return time.Time{}
	}
	t, _ := time.Parse(dateLayout, e.BirthDate)
	return t
}
