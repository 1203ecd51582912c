package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"golang.org/x/time/rate"

	"github.com/ezBadminton/goversus/core"
)

const (
	// noembed resolves titles of video links without an API key
	DefaultTitleEndpoint = "https://noembed.com/embed"

	DefaultTitleTimeout = 10 * time.Second

	VideoFallbackTitle = "Watch Video"
	ImageFallbackTitle = "View Image"

	maxDisplayLength = 50
)

// Default rate limit for title lookups
var DefaultTitleRateLimit = rate.Every(500 * time.Millisecond)

// TitleFetcherOptions configures a TitleFetcher.
type TitleFetcherOptions struct {
	// Endpoint of the oEmbed lookup (default: noembed)
	Endpoint string

	// RateLimit controls the lookup frequency (default: 2 per second)
	RateLimit rate.Limit

	// Timeout for a single lookup (default: 10 seconds)
	Timeout time.Duration

	// HTTPClient allows a custom HTTP client
	HTTPClient *http.Client

	Logger *slog.Logger
}

// A TitleFetcher finds display titles for items.
//
// Titles are decoration only. Every failure falls back to a
// generic title and never returns an error.
type TitleFetcher struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewTitleFetcher(options TitleFetcherOptions) *TitleFetcher {
	if options.Endpoint == "" {
		options.Endpoint = DefaultTitleEndpoint
	}
	if options.RateLimit == 0 {
		options.RateLimit = DefaultTitleRateLimit
	}
	if options.Timeout == 0 {
		options.Timeout = DefaultTitleTimeout
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.Timeout,
		}
	}

	return &TitleFetcher{
		endpoint:   options.Endpoint,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(options.RateLimit, 1),
		logger:     options.Logger,
	}
}

// Returns the display title of the item. A label is used as is.
//
// Videos are looked up at the oEmbed endpoint, images are
// titled by their file name and texts by their display name.
func (f *TitleFetcher) Title(ctx context.Context, item *core.Item) string {
	if item.Label != "" {
		return item.Label
	}
	switch item.Kind {
	case core.KindVideo:
		title, err := f.fetchVideoTitle(ctx, item.Content)
		if err != nil {
			f.logger.Debug("video title lookup failed",
				slog.String("item_id", item.ID),
				slog.Any("error", err),
			)
			return VideoFallbackTitle
		}
		return title
	case core.KindImage:
		return ImageTitle(item.Content)
	default:
		return item.DisplayName()
	}
}

// Returns the titles of both opponents of a match. The second
// title is empty for a bye.
func (f *TitleFetcher) MatchTitles(ctx context.Context, match *core.Match) (string, string) {
	title1 := f.Title(ctx, match.P1)
	if match.P2 == nil {
		return title1, ""
	}
	return title1, f.Title(ctx, match.P2)
}

type oEmbedResponse struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

func (f *TitleFetcher) fetchVideoTitle(ctx context.Context, videoURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Set("url", videoURL)
	fullURL := f.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Title == "" {
		return "", fmt.Errorf("no title in response: %s", body.Error)
	}

	return body.Title, nil
}

// Returns the file name of an image link
func ImageTitle(imageURL string) string {
	name := imageURL
	if parsed, err := url.Parse(imageURL); err == nil && parsed.Path != "" {
		name = parsed.Path
	}
	name = path.Base(name)
	if name == "" || name == "." || name == "/" {
		return ImageFallbackTitle
	}
	return name
}

// Shortens long titles to 50 characters followed by "..."
func DisplayText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxDisplayLength {
		return text
	}
	return string(runes[:maxDisplayLength]) + "..."
}
