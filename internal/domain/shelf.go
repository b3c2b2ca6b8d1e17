package domain

// ShelfItem is the trimmed catalog entry a shelf carries.
type ShelfItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	MediaType  string `json:"media_type"` // "movie" or "tv"
}

// Shelf is a curated row of titles composed from the catalog's popular lists.
type Shelf struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Movies []ShelfItem `json:"movies"`
}

type ShelfService interface {
	GetShelves() ([]Shelf, error)
}
