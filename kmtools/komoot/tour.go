package komoot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"komoot-tools/kmtools/track"

	"github.com/PuerkitoBio/goquery"
)

// Tour pages embed their data as a javascript string literal passed to
// kmtBoot.setProps inside a script element.
const propsPrefix = `kmtBoot.setProps("`
const propsSuffix = `");`

type tourPage struct {
	Page struct {
		Embedded struct {
			Tour tourData `json:"tour"`
		} `json:"_embedded"`
	} `json:"page"`
}

type tourData struct {
	Name     string `json:"name"`
	Embedded struct {
		Coordinates struct {
			Items []coordinate `json:"items"`
		} `json:"coordinates"`
	} `json:"_embedded"`
}

type coordinate struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
	Alt *float64 `json:"alt"`
}

// extractTourData locates the embedded tour payload in a tour page and
// returns it as plain json bytes.
func extractTourData(r io.Reader) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var payload string
	found := false
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		start := strings.Index(text, propsPrefix)
		if start == -1 {
			return true
		}

		text = text[start+len(propsPrefix):]
		end := strings.Index(text, propsSuffix)
		if end == -1 {
			return true
		}

		payload = text[:end]
		found = true
		return false
	})

	if !found {
		return nil, errors.New("no embedded tour data found, this may not be a komoot tour page")
	}

	unescaped, err := unescape(payload)
	if err != nil {
		return nil, err
	}

	return []byte(unescaped), nil
}

// parseTour converts the tour json payload into a track.
func parseTour(data []byte) (track.Track, error) {
	var page tourPage
	if err := json.Unmarshal(data, &page); err != nil {
		return track.Track{}, fmt.Errorf("failed to parse tour data: '%s'", err)
	}

	tour := page.Page.Embedded.Tour
	if tour.Name == "" {
		return track.Track{}, errors.New("tour name not found in tour data")
	}

	items := tour.Embedded.Coordinates.Items
	if len(items) == 0 {
		return track.Track{}, errors.New("no coordinates found in tour data")
	}

	points := make([]track.Point, len(items))
	for i, c := range items {
		if c.Lat == nil || c.Lng == nil || c.Alt == nil {
			return track.Track{}, fmt.Errorf("coordinate %d in tour data is incomplete", i)
		}
		points[i] = track.NewPoint(*c.Lat, *c.Lng, *c.Alt)
	}

	return track.New(tour.Name, points), nil
}

// unescape decodes the javascript string escapes of the embedded payload.
func unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(s) {
			return "", errors.New("truncated escape sequence in tour data")
		}

		switch s[i+1] {
		case '"', '\\', '/', '\'':
			b.WriteByte(s[i+1])
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'u':
			r, size, err := decodeUnicodeEscape(s[i:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += size
		default:
			return "", fmt.Errorf("unsupported escape sequence '\\%c' in tour data", s[i+1])
		}
	}

	return b.String(), nil
}

// decodeUnicodeEscape decodes a leading \uXXXX sequence, combining utf16
// surrogate pairs when the following sequence completes one.
func decodeUnicodeEscape(s string) (rune, int, error) {
	if len(s) < 6 {
		return 0, 0, errors.New("truncated unicode escape in tour data")
	}

	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid unicode escape '%s' in tour data", s[:6])
	}

	r := rune(v)
	size := 6

	if utf16.IsSurrogate(r) && len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		if v2, err := strconv.ParseUint(s[8:12], 16, 32); err == nil {
			if combined := utf16.DecodeRune(r, rune(v2)); combined != utf8.RuneError {
				r = combined
				size = 12
			}
		}
	}

	return r, size, nil
}
