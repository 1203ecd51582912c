package entry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/ezBadminton/goversus/core"
)

func newTestTitleServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("url") {
		case "https://youtu.be/dQw4w9WgXcQ":
			_, _ = w.Write([]byte(`{"title":"Never Gonna Give You Up"}`))
		case "https://youtu.be/missing0000":
			_, _ = w.Write([]byte(`{"error":"404 Not Found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTitleFetcher(t *testing.T) {
	server := newTestTitleServer(t)
	fetcher := NewTitleFetcher(TitleFetcherOptions{
		Endpoint:  server.URL,
		RateLimit: rate.Inf,
	})
	ctx := context.Background()

	video := &core.Item{ID: "v", Content: "https://youtu.be/dQw4w9WgXcQ", Kind: core.KindVideo}
	assert.Equal(t, "Never Gonna Give You Up", fetcher.Title(ctx, video))

	missing := &core.Item{ID: "m", Content: "https://youtu.be/missing0000", Kind: core.KindVideo}
	assert.Equal(t, VideoFallbackTitle, fetcher.Title(ctx, missing))

	broken := &core.Item{ID: "b", Content: "https://youtu.be/broken00000", Kind: core.KindVideo}
	assert.Equal(t, VideoFallbackTitle, fetcher.Title(ctx, broken))

	image := &core.Item{ID: "i", Content: "https://example.com/pics/cat.png", Kind: core.KindImage}
	assert.Equal(t, "cat.png", fetcher.Title(ctx, image))

	text := &core.Item{ID: "t", Content: "Pizza", Kind: core.KindText}
	assert.Equal(t, "Pizza", fetcher.Title(ctx, text))

	title1, title2 := fetcher.MatchTitles(ctx, core.NewMatch("m", video, text))
	assert.Equal(t, "Never Gonna Give You Up", title1)
	assert.Equal(t, "Pizza", title2)

	title1, title2 = fetcher.MatchTitles(ctx, core.NewByeMatch("bye", text))
	assert.Equal(t, "Pizza", title1)
	assert.Empty(t, title2)
}

func TestTitleFetcherCanceled(t *testing.T) {
	server := newTestTitleServer(t)
	fetcher := NewTitleFetcher(TitleFetcherOptions{
		Endpoint:  server.URL,
		RateLimit: rate.Every(time.Hour),
	})

	video := &core.Item{ID: "v", Content: "https://youtu.be/dQw4w9WgXcQ", Kind: core.KindVideo}

	// The first lookup uses the burst, the second would wait an hour
	require.Equal(t, "Never Gonna Give You Up", fetcher.Title(context.Background(), video))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Equal(t, VideoFallbackTitle, fetcher.Title(ctx, video))
}

func TestImageTitle(t *testing.T) {
	assert.Equal(t, "cat.png", ImageTitle("https://example.com/cat.png"))
	assert.Equal(t, "cat.png", ImageTitle("https://example.com/cat.png?size=large"))
	assert.Equal(t, ImageFallbackTitle, ImageTitle("https://example.com/"))
	assert.Equal(t, "dog.jpg", ImageTitle("dog.jpg"))
}

func TestDisplayText(t *testing.T) {
	short := "Short title"
	assert.Equal(t, short, DisplayText(short))

	long := strings.Repeat("ä", 60)
	shortened := DisplayText(long)
	assert.Equal(t, strings.Repeat("ä", 50)+"...", shortened)

	exact := strings.Repeat("x", 50)
	assert.Equal(t, exact, DisplayText(exact))
}
