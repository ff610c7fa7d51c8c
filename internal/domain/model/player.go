package model

// PlayerConfig is the document stored behind a /p/{id} short link. Audio and
// image refs may be absolute URLs or storage keys resolved against the
// public base URL. Immutable once stored.
type PlayerConfig struct {
	Audio   string  `json:"audio"`
	Image   *string `json:"image"`
	Title   *string `json:"title"`
	Created int64   `json:"created"`
}

type Track struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// PlaylistConfig is the document stored behind a /pl/{id} short link.
type PlaylistConfig struct {
	Name    string  `json:"name"`
	Tracks  []Track `json:"tracks"`
	Created int64   `json:"created"`
}
