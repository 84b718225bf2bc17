package komoot

import (
	"fmt"
	"net/http"
	"time"

	"komoot-tools/kmtools/track"
)

// Komoot is a client to fetch tours from komoot.com tour pages.
type Komoot struct {
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a new client to download tours from Komoot
func NewClient(userAgent string, timeout time.Duration) *Komoot {
	return &Komoot{
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// DownloadTour fetches a tour page and converts the embedded tour data into
// a single-segment track.
func (k *Komoot) DownloadTour(tourURL string) (track.Track, error) {
	req, err := http.NewRequest("GET", tourURL, nil)
	if err != nil {
		return track.Track{}, err
	}
	req.Header.Add("User-Agent", k.UserAgent)

	res, err := k.HTTPClient.Do(req)
	if err != nil {
		return track.Track{}, err
	}

	defer res.Body.Close()
	if res.StatusCode != 200 {
		return track.Track{}, fmt.Errorf("komoot tour request failed with error: %d %s", res.StatusCode, res.Status)
	}

	payload, err := extractTourData(res.Body)
	if err != nil {
		return track.Track{}, err
	}

	return parseTour(payload)
}
