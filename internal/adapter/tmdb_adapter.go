package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// TMDBAdapter is the read-only catalog proxy. Calls are single-attempt and
// bounded by the client timeout; any failure surfaces as domain.ErrUpstream.
type TMDBAdapter interface {
	GetDetail(tmdbID int64, mediaType string) (map[string]interface{}, error)
	GetPopularMovies(page int) (map[string]interface{}, error)
	GetPopularSeries(page int) (map[string]interface{}, error)
}

type tmdbAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewTMDBAdapter creates a TMDBAdapter against the given base URL using the
// bearer API key.
func NewTMDBAdapter(baseURL, apiKey string) TMDBAdapter {
	return &tmdbAdapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// GetDetail fetches title detail by external id. mediaType is "tv" or
// "movie"; anything else is treated as "movie". The response is annotated
// with the media_type it was fetched as.
func (a *tmdbAdapter) GetDetail(tmdbID int64, mediaType string) (map[string]interface{}, error) {
	if mediaType != "tv" {
		mediaType = "movie"
	}
	data, err := a.get(fmt.Sprintf("/%s/%d?append_to_response=credits", mediaType, tmdbID))
	if err != nil {
		return nil, err
	}
	data["media_type"] = mediaType
	return data, nil
}

// GetPopularMovies fetches the popular-movies list page.
func (a *tmdbAdapter) GetPopularMovies(page int) (map[string]interface{}, error) {
	if page < 1 {
		page = 1
	}
	return a.get(fmt.Sprintf("/movie/popular?language=en-US&page=%d", page))
}

// GetPopularSeries fetches the popular-series list page.
func (a *tmdbAdapter) GetPopularSeries(page int) (map[string]interface{}, error) {
	if page < 1 {
		page = 1
	}
	return a.get(fmt.Sprintf("/tv/popular?language=en-US&page=%d", page))
}

func (a *tmdbAdapter) get(endpoint string) (map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, a.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: tmdb returned status %d", domain.ErrUpstream, resp.StatusCode)
	}
	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return data, nil
}
