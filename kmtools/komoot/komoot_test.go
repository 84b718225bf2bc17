package komoot_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"komoot-tools/kmtools/komoot"

	"github.com/stretchr/testify/require"
)

const tourJSON = `{"page":{"_embedded":{"tour":{"name":"Morning Ride","_embedded":{"coordinates":{"items":[` +
	`{"lat":45.0,"lng":11.0,"alt":100.0},` +
	`{"lat":45.001,"lng":11.001,"alt":150.0},` +
	`{"lat":45.002,"lng":11.002,"alt":105.0}]}}}}}}`

// tourPage wraps a json payload the way komoot embeds it: as an escaped
// javascript string literal passed to kmtBoot.setProps.
func tourPage(json string) string {
	escaped := strings.ReplaceAll(json, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `<html><head><title>Tour</title></head><body>` +
		`<script>kmtBoot.setProps("` + escaped + `");</script>` +
		`</body></html>`
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDownloadTour(t *testing.T) {
	require := require.New(t)

	server := serve(t, 200, tourPage(tourJSON))
	client := komoot.NewClient("komoot-tools-test", 5*time.Second)

	tr, err := client.DownloadTour(server.URL)
	require.NoError(err)

	require.Equal("Morning Ride", tr.Name)
	require.Len(tr.Segments, 1)
	require.Equal(3, tr.NumPoints())
	require.Equal(45.0, tr.Segments[0][0].Latitude)
	require.Equal(11.0, tr.Segments[0][0].Longitude)
	require.Equal(100.0, tr.Segments[0][0].Elevation.Value())
	require.Equal(105.0, tr.Segments[0][2].Elevation.Value())
}

func TestDownloadTourUnicodeEscapes(t *testing.T) {
	require := require.New(t)

	page := `<html><body><script>kmtBoot.setProps("{\"page\":{\"_embedded\":{\"tour\":` +
		`{\"name\":\"Café 😊 Ride\",\"_embedded\":{\"coordinates\":{\"items\":` +
		`[{\"lat\":45.0,\"lng\":11.0,\"alt\":100.0},{\"lat\":45.1,\"lng\":11.1,\"alt\":200.0}]}}}}}}");</script></body></html>`

	server := serve(t, 200, page)
	client := komoot.NewClient("komoot-tools-test", 5*time.Second)

	tr, err := client.DownloadTour(server.URL)
	require.NoError(err)
	require.Equal("Café 😊 Ride", tr.Name)
	require.Equal(2, tr.NumPoints())
}

func TestDownloadTourErrors(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"http_error":     {status: 404, body: "not found"},
		"no_marker":      {status: 200, body: "<html><body><script>var x = 1;</script></body></html>"},
		"no_script":      {status: 200, body: "<html><body><p>hello</p></body></html>"},
		"empty_name":     {status: 200, body: tourPage(`{"page":{"_embedded":{"tour":{"name":"","_embedded":{"coordinates":{"items":[{"lat":1,"lng":2,"alt":3}]}}}}}}`)},
		"no_coordinates": {status: 200, body: tourPage(`{"page":{"_embedded":{"tour":{"name":"Ride","_embedded":{"coordinates":{"items":[]}}}}}}`)},
		"missing_alt":    {status: 200, body: tourPage(`{"page":{"_embedded":{"tour":{"name":"Ride","_embedded":{"coordinates":{"items":[{"lat":1,"lng":2}]}}}}}}`)},
		"invalid_json":   {status: 200, body: tourPage(`{"page":`)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			server := serve(t, tc.status, tc.body)
			client := komoot.NewClient("komoot-tools-test", 5*time.Second)

			_, err := client.DownloadTour(server.URL)
			require.Error(err)
		})
	}
}
