package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/service"

	"golang.org/x/sync/errgroup"
)

// Counts reports what one phase did. Entries already in the store are skipped.
type Counts struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type Summary struct {
	Countries  Counts `json:"countries"`
	Categories Counts `json:"categories"`
	Reviewers  Counts `json:"reviewers"`
	Owners     Counts `json:"owners"`
	Pokemon    Counts `json:"pokemon"`
	Reviews    Counts `json:"reviews"`
}

// Importer writes a catalog through the services, so every create goes
// through the same duplicate and reference checks as the API.
type Importer struct {
	svc     *service.Services
	workers int
	log     *logger.Logger
}

func NewImporter(svc *service.Services, workers int, log *logger.Logger) *Importer {
	if workers < 1 {
		workers = 1
	}
	return &Importer{svc: svc, workers: workers, log: log}
}

// Import runs the phases in dependency order. Re-importing the same catalog
// is a no-op apart from the skipped counts.
func (im *Importer) Import(ctx context.Context, c *Catalog) (*Summary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var sum Summary

	countries, err := im.importCountries(ctx, c.Countries, &sum.Countries)
	if err != nil {
		return &sum, err
	}
	categories, err := im.importCategories(ctx, c.Categories, &sum.Categories)
	if err != nil {
		return &sum, err
	}
	reviewers, err := im.importReviewers(ctx, c.Reviewers, &sum.Reviewers)
	if err != nil {
		return &sum, err
	}
	owners, err := im.importOwners(ctx, c.Owners, countries, &sum.Owners)
	if err != nil {
		return &sum, err
	}
	pokemon, err := im.importPokemon(ctx, c.Pokemon, owners, categories, &sum.Pokemon)
	if err != nil {
		return &sum, err
	}
	if err := im.importReviews(ctx, c.Reviews, reviewers, pokemon, &sum.Reviews); err != nil {
		return &sum, err
	}

	im.log.Info("catalog imported",
		"countries", sum.Countries.Created, "categories", sum.Categories.Created,
		"reviewers", sum.Reviewers.Created, "owners", sum.Owners.Created,
		"pokemon", sum.Pokemon.Created, "reviews", sum.Reviews.Created)
	return &sum, nil
}

// key matches the services' natural name comparison.
func key(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// index maps the natural key of every stored row to its id.
func index[T any](rows []T, name func(T) string, id func(T) int64) map[string]int64 {
	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		ids[key(name(row))] = id(row)
	}
	return ids
}

func lookup(ids map[string]int64, what, name string) (int64, error) {
	id, ok := ids[key(name)]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", what, name, service.ErrNotFound)
	}
	return id, nil
}

func (im *Importer) importCountries(ctx context.Context, entries []NamedEntry, counts *Counts) (map[string]int64, error) {
	rows, err := im.svc.Countries.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(rows, func(x models.Country) string { return x.Name }, func(x models.Country) int64 { return x.ID })
	for _, e := range entries {
		if _, ok := ids[key(e.Name)]; ok {
			counts.Skipped++
			continue
		}
		row := &models.Country{Name: strings.TrimSpace(e.Name)}
		if err := im.svc.Countries.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("import country %q: %w", e.Name, err)
		}
		ids[key(e.Name)] = row.ID
		counts.Created++
	}
	return ids, nil
}

func (im *Importer) importCategories(ctx context.Context, entries []NamedEntry, counts *Counts) (map[string]int64, error) {
	rows, err := im.svc.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(rows, func(x models.Category) string { return x.Name }, func(x models.Category) int64 { return x.ID })
	for _, e := range entries {
		if _, ok := ids[key(e.Name)]; ok {
			counts.Skipped++
			continue
		}
		row := &models.Category{Name: strings.TrimSpace(e.Name)}
		if err := im.svc.Categories.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("import category %q: %w", e.Name, err)
		}
		ids[key(e.Name)] = row.ID
		counts.Created++
	}
	return ids, nil
}

func (im *Importer) importReviewers(ctx context.Context, entries []ReviewerEntry, counts *Counts) (map[string]int64, error) {
	rows, err := im.svc.Reviewers.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(rows, func(x models.Reviewer) string { return x.LastName }, func(x models.Reviewer) int64 { return x.ID })
	for _, e := range entries {
		if _, ok := ids[key(e.LastName)]; ok {
			counts.Skipped++
			continue
		}
		row := &models.Reviewer{FirstName: strings.TrimSpace(e.FirstName), LastName: strings.TrimSpace(e.LastName)}
		if err := im.svc.Reviewers.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("import reviewer %q: %w", e.LastName, err)
		}
		ids[key(e.LastName)] = row.ID
		counts.Created++
	}
	return ids, nil
}

func (im *Importer) importOwners(ctx context.Context, entries []OwnerEntry, countries map[string]int64, counts *Counts) (map[string]int64, error) {
	rows, err := im.svc.Owners.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(rows, func(x models.Owner) string { return x.FirstName }, func(x models.Owner) int64 { return x.ID })
	for _, e := range entries {
		if _, ok := ids[key(e.FirstName)]; ok {
			counts.Skipped++
			continue
		}
		countryID, err := lookup(countries, "country", e.Country)
		if err != nil {
			return nil, fmt.Errorf("import owner %q: %w", e.FirstName, err)
		}
		row := &models.Owner{FirstName: strings.TrimSpace(e.FirstName), LastName: strings.TrimSpace(e.LastName), Gender: e.Gender}
		if err := im.svc.Owners.Create(ctx, countryID, row); err != nil {
			return nil, fmt.Errorf("import owner %q: %w", e.FirstName, err)
		}
		ids[key(e.FirstName)] = row.ID
		counts.Created++
	}
	return ids, nil
}

func (im *Importer) importPokemon(ctx context.Context, entries []PokemonEntry, owners, categories map[string]int64, counts *Counts) (map[string]int64, error) {
	rows, err := im.svc.Pokemon.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(rows, func(x models.Pokemon) string { return x.Name }, func(x models.Pokemon) int64 { return x.ID })
	for _, e := range entries {
		if _, ok := ids[key(e.Name)]; ok {
			counts.Skipped++
			continue
		}
		ownerID, err := lookup(owners, "owner", e.Owner)
		if err != nil {
			return nil, fmt.Errorf("import pokemon %q: %w", e.Name, err)
		}
		categoryID, err := lookup(categories, "category", e.Category)
		if err != nil {
			return nil, fmt.Errorf("import pokemon %q: %w", e.Name, err)
		}
		row := &models.Pokemon{Name: strings.TrimSpace(e.Name), BirthDate: e.birthDate()}
		if err := im.svc.Pokemon.Create(ctx, ownerID, categoryID, row); err != nil {
			return nil, fmt.Errorf("import pokemon %q: %w", e.Name, err)
		}
		ids[key(e.Name)] = row.ID
		counts.Created++
	}
	return ids, nil
}

// importReviews is the bulk phase and fans out over the worker count.
// A duplicate title is a skip, the unique index settles concurrent writers.
func (im *Importer) importReviews(ctx context.Context, entries []ReviewEntry, reviewers, pokemon map[string]int64, counts *Counts) error {
	rows, err := im.svc.Reviews.List(ctx)
	if err != nil {
		return err
	}
	seen := index(rows, func(x models.Review) string { return x.Title }, func(x models.Review) int64 { return x.ID })

	type job struct {
		entry      ReviewEntry
		reviewerID int64
		pokemonID  int64
	}
	var jobs []job
	for _, e := range entries {
		if _, ok := seen[key(e.Title)]; ok {
			counts.Skipped++
			continue
		}
		reviewerID, err := lookup(reviewers, "reviewer", e.Reviewer)
		if err != nil {
			return fmt.Errorf("import review %q: %w", e.Title, err)
		}
		pokemonID, err := lookup(pokemon, "pokemon", e.Pokemon)
		if err != nil {
			return fmt.Errorf("import review %q: %w", e.Title, err)
		}
		jobs = append(jobs, job{entry: e, reviewerID: reviewerID, pokemonID: pokemonID})
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			row := &models.Review{Title: strings.TrimSpace(j.entry.Title), Text: j.entry.Text, Rating: j.entry.Rating}
			err := im.svc.Reviews.Create(gctx, j.reviewerID, j.pokemonID, row)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				counts.Created++
			case errors.Is(err, service.ErrDuplicateEntry):
				counts.Skipped++
			default:
				return fmt.Errorf("import review %q: %w", j.entry.Title, err)
			}
			return nil
		})
	}
	return g.Wait()
}
