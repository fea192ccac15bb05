package seloger

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domain "github.com/kakwa/immowatch/pkg/types"
)

const (
	defaultSearchURL = "http://ws.seloger.com/search.xml"

	// The remote room-count filter is an enumerated set, not a floor;
	// a minimum-rooms criterion expands to every count up to this cap.
	maxRoomChoice = 10
)

// SearchClient abstracts the remote listing service: building the first
// page URL from a search and fetching any page of the chain.
type SearchClient interface {
	SearchURL(spec *domain.SearchSpec) string
	FetchPage(ctx context.Context, pageURL string) (*Page, error)
}

// HTTPSearchClient implements SearchClient against the seloger search
// endpoint, which speaks XML and paginates through an absolute
// next-page URL embedded in each response.
type HTTPSearchClient struct {
	searchURL   string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ClientOption configures the HTTPSearchClient.
type ClientOption func(*HTTPSearchClient)

// WithSearchURL overrides the default search endpoint.
func WithSearchURL(u string) ClientOption {
	return func(c *HTTPSearchClient) {
		c.searchURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPSearchClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a limiter that paces page fetches. When set,
// every FetchPage call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *HTTPSearchClient) {
		c.rateLimiter = r
	}
}

// NewHTTPSearchClient creates a new search client.
func NewHTTPSearchClient(opts ...ClientOption) *HTTPSearchClient {
	c := &HTTPSearchClient{
		searchURL: defaultSearchURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchURL builds the first-page query URL for a search. Price and
// surface bounds use the service's open-ended "NAN/<v>" interval
// syntax; the minimum room count expands to an acceptable-rooms set.
func (c *HTTPSearchClient) SearchURL(spec *domain.SearchSpec) string {
	params := url.Values{}
	params.Set("cp", spec.PostalCode)
	params.Set("idqfix", "1")
	params.Set("idtt", transactionID(spec.DealType))
	params.Set("idtypebien", "1,2")
	params.Set("px_loyerbtw", "NAN/"+spec.MaxPrice)
	params.Set("surfacebtw", spec.MinSurface+"/NAN")

	if rooms := roomsParam(spec.MinRooms); rooms != "" {
		params.Set("nb_pieces", rooms)
	}

	params.Set("SEARCHpg", "1")

	return c.searchURL + "?" + params.Encode()
}

// FetchPage retrieves and parses one result page.
func (c *HTTPSearchClient) FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating page request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading page body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API error (status %d)", resp.StatusCode)
	}

	var apiResp searchAPIResponse
	if err := xml.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing page XML: %w", err)
	}

	return &Page{
		Ads:      apiResp.Ads,
		NextPage: strings.TrimSpace(apiResp.NextPage),
	}, nil
}

func transactionID(dt domain.DealType) string {
	if dt == domain.DealSale {
		return "2"
	}
	return "1"
}

func roomsParam(minRooms int) string {
	if minRooms <= 0 || minRooms > maxRoomChoice {
		return ""
	}

	choices := make([]string, 0, maxRoomChoice-minRooms+1)
	for n := minRooms; n <= maxRoomChoice; n++ {
		choices = append(choices, strconv.Itoa(n))
	}
	return strings.Join(choices, ",")
}
