package client

// http_client.go = thin HTTP client over the pokereview API used by the CLI commands.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokereview/internal/microservices/http-api/dto"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// APIError carries a non-success status and the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// constructor for HTTP client, apiURL includes the /api prefix
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do sends one request and decodes the body into out when want matches.
func (c *HTTPClient) do(ctx context.Context, method, path string, in interface{}, want int, out interface{}) error {
	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func withQuery(path string, kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return path + "?" + q.Encode()
}

func id(n int64) string {
	return fmt.Sprintf("%d", n)
}

// Pokemon

func (c *HTTPClient) ListPokemon(ctx context.Context) ([]dto.PokemonDTO, error) {
	var result []dto.PokemonDTO
	err := c.do(ctx, http.MethodGet, "/pokemon", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetPokemon(ctx context.Context, pokemonID int64) (*dto.PokemonDTO, error) {
	var result dto.PokemonDTO
	if err := c.do(ctx, http.MethodGet, "/pokemon/"+id(pokemonID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SearchPokemon(ctx context.Context, name string) (*dto.PokemonDTO, error) {
	var result dto.PokemonDTO
	if err := c.do(ctx, http.MethodGet, withQuery("/pokemon/search", "name", name), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetPokemonRating(ctx context.Context, pokemonID int64) (*dto.PokemonRatingResponse, error) {
	var result dto.PokemonRatingResponse
	if err := c.do(ctx, http.MethodGet, "/pokemon/"+id(pokemonID)+"/rating", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]dto.OwnerDTO, error) {
	var result []dto.OwnerDTO
	err := c.do(ctx, http.MethodGet, "/pokemon/"+id(pokemonID)+"/owners", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) CreatePokemon(ctx context.Context, ownerID, categoryID int64, p *dto.PokemonDTO) (*dto.PokemonDTO, error) {
	var result dto.PokemonDTO
	path := withQuery("/pokemon", "ownerId", id(ownerID), "categoryId", id(categoryID))
	if err := c.do(ctx, http.MethodPost, path, p, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdatePokemon(ctx context.Context, p *dto.PokemonDTO) error {
	return c.do(ctx, http.MethodPut, "/pokemon/"+id(p.ID), p, http.StatusNoContent, nil)
}

func (c *HTTPClient) DeletePokemon(ctx context.Context, pokemonID int64) error {
	return c.do(ctx, http.MethodDelete, "/pokemon/"+id(pokemonID), nil, http.StatusNoContent, nil)
}

// Categories

func (c *HTTPClient) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	var result []dto.CategoryDTO
	err := c.do(ctx, http.MethodGet, "/categories", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetCategory(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	var result dto.CategoryDTO
	if err := c.do(ctx, http.MethodGet, "/categories/"+id(categoryID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetPokemonByCategory(ctx context.Context, categoryID int64) ([]dto.PokemonDTO, error) {
	var result []dto.PokemonDTO
	err := c.do(ctx, http.MethodGet, "/categories/"+id(categoryID)+"/pokemon", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) CreateCategory(ctx context.Context, in *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	var result dto.CategoryDTO
	if err := c.do(ctx, http.MethodPost, "/categories", in, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, categoryID int64) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id(categoryID), nil, http.StatusNoContent, nil)
}

// Countries

func (c *HTTPClient) ListCountries(ctx context.Context) ([]dto.CountryDTO, error) {
	var result []dto.CountryDTO
	err := c.do(ctx, http.MethodGet, "/countries", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetCountry(ctx context.Context, countryID int64) (*dto.CountryDTO, error) {
	var result dto.CountryDTO
	if err := c.do(ctx, http.MethodGet, "/countries/"+id(countryID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetOwnersFromCountry(ctx context.Context, countryID int64) ([]dto.OwnerDTO, error) {
	var result []dto.OwnerDTO
	err := c.do(ctx, http.MethodGet, "/countries/"+id(countryID)+"/owners", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) CreateCountry(ctx context.Context, in *dto.CountryDTO) (*dto.CountryDTO, error) {
	var result dto.CountryDTO
	if err := c.do(ctx, http.MethodPost, "/countries", in, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteCountry(ctx context.Context, countryID int64) error {
	return c.do(ctx, http.MethodDelete, "/countries/"+id(countryID), nil, http.StatusNoContent, nil)
}

// Owners

func (c *HTTPClient) ListOwners(ctx context.Context) ([]dto.OwnerDTO, error) {
	var result []dto.OwnerDTO
	err := c.do(ctx, http.MethodGet, "/owners", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetOwner(ctx context.Context, ownerID int64) (*dto.OwnerDTO, error) {
	var result dto.OwnerDTO
	if err := c.do(ctx, http.MethodGet, "/owners/"+id(ownerID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetPokemonByOwner(ctx context.Context, ownerID int64) ([]dto.PokemonDTO, error) {
	var result []dto.PokemonDTO
	err := c.do(ctx, http.MethodGet, "/owners/"+id(ownerID)+"/pokemon", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetCountryOfOwner(ctx context.Context, ownerID int64) (*dto.CountryDTO, error) {
	var result dto.CountryDTO
	if err := c.do(ctx, http.MethodGet, "/owners/"+id(ownerID)+"/country", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateOwner(ctx context.Context, countryID int64, in *dto.OwnerDTO) (*dto.OwnerDTO, error) {
	var result dto.OwnerDTO
	if err := c.do(ctx, http.MethodPost, withQuery("/owners", "countryId", id(countryID)), in, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteOwner(ctx context.Context, ownerID int64) error {
	return c.do(ctx, http.MethodDelete, "/owners/"+id(ownerID), nil, http.StatusNoContent, nil)
}

// Reviewers

func (c *HTTPClient) ListReviewers(ctx context.Context) ([]dto.ReviewerDTO, error) {
	var result []dto.ReviewerDTO
	err := c.do(ctx, http.MethodGet, "/reviewers", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetReviewer(ctx context.Context, reviewerID int64) (*dto.ReviewerDTO, error) {
	var result dto.ReviewerDTO
	if err := c.do(ctx, http.MethodGet, "/reviewers/"+id(reviewerID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetReviewsByReviewer(ctx context.Context, reviewerID int64) ([]dto.ReviewDTO, error) {
	var result []dto.ReviewDTO
	err := c.do(ctx, http.MethodGet, "/reviewers/"+id(reviewerID)+"/reviews", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) CreateReviewer(ctx context.Context, in *dto.ReviewerDTO) (*dto.ReviewerDTO, error) {
	var result dto.ReviewerDTO
	if err := c.do(ctx, http.MethodPost, "/reviewers", in, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteReviewer(ctx context.Context, reviewerID int64) error {
	return c.do(ctx, http.MethodDelete, "/reviewers/"+id(reviewerID), nil, http.StatusNoContent, nil)
}

// Reviews

func (c *HTTPClient) ListReviews(ctx context.Context) ([]dto.ReviewDTO, error) {
	var result []dto.ReviewDTO
	err := c.do(ctx, http.MethodGet, "/reviews", nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) GetReview(ctx context.Context, reviewID int64) (*dto.ReviewDTO, error) {
	var result dto.ReviewDTO
	if err := c.do(ctx, http.MethodGet, "/reviews/"+id(reviewID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]dto.ReviewDTO, error) {
	var result []dto.ReviewDTO
	err := c.do(ctx, http.MethodGet, "/reviews/pokemon/"+id(pokemonID), nil, http.StatusOK, &result)
	return result, err
}

func (c *HTTPClient) CreateReview(ctx context.Context, reviewerID, pokemonID int64, in *dto.ReviewDTO) (*dto.ReviewDTO, error) {
	var result dto.ReviewDTO
	path := withQuery("/reviews", "reviewerId", id(reviewerID), "pokemonId", id(pokemonID))
	if err := c.do(ctx, http.MethodPost, path, in, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+id(reviewID), nil, http.StatusNoContent, nil)
}
