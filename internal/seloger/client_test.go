package seloger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kakwa/immowatch/pkg/types"
)

const samplePageXML = `<?xml version="1.0" encoding="UTF-8"?>
<recherche>
  <annonces>
    <annonce>
      <idAnnonce>101</idAnnonce>
      <titre>Apartment</titre>
      <descriptif>Bright two rooms near the station</descriptif>
      <prix>850</prix>
      <prixUnite>EUR</prixUnite>
      <nbPiece>2</nbPiece>
      <surface>45</surface>
      <surfaceUnite>m2</surfaceUnite>
      <cp>75011</cp>
      <ville>Paris</ville>
      <permaLien>http://example.com/101</permaLien>
    </annonce>
    <annonce>
      <idAnnonce>102</idAnnonce>
      <titre>Studio</titre>
      <prix>600</prix>
    </annonce>
  </annonces>
  <pageSuivante>http://example.com/page/2</pageSuivante>
</recherche>`

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name string
		spec domain.SearchSpec
		want url.Values
	}{
		{
			name: "rental search with rooms",
			spec: domain.SearchSpec{
				PostalCode: "75011",
				MinSurface: "30",
				MaxPrice:   "1200",
				DealType:   domain.DealRent,
				MinRooms:   2,
			},
			want: url.Values{
				"cp":          {"75011"},
				"idqfix":      {"1"},
				"idtt":        {"1"},
				"idtypebien":  {"1,2"},
				"px_loyerbtw": {"NAN/1200"},
				"surfacebtw":  {"30/NAN"},
				"nb_pieces":   {"2,3,4,5,6,7,8,9,10"},
				"SEARCHpg":    {"1"},
			},
		},
		{
			name: "sale search without room filter",
			spec: domain.SearchSpec{
				PostalCode: "33000",
				MinSurface: "60",
				MaxPrice:   "300000",
				DealType:   domain.DealSale,
				MinRooms:   0,
			},
			want: url.Values{
				"cp":          {"33000"},
				"idqfix":      {"1"},
				"idtt":        {"2"},
				"idtypebien":  {"1,2"},
				"px_loyerbtw": {"NAN/300000"},
				"surfacebtw":  {"60/NAN"},
				"SEARCHpg":    {"1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHTTPSearchClient()

			u, err := url.Parse(c.SearchURL(&tt.spec))
			require.NoError(t, err)

			assert.Equal(t, "ws.seloger.com", u.Host)
			assert.Equal(t, "/search.xml", u.Path)
			assert.Equal(t, tt.want, u.Query())
		})
	}
}

func TestRoomsParam(t *testing.T) {
	assert.Equal(t, "9,10", roomsParam(9))
	assert.Equal(t, "10", roomsParam(10))
	assert.Empty(t, roomsParam(0))
	assert.Empty(t, roomsParam(-1))
	assert.Empty(t, roomsParam(11))
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(samplePageXML))
	}))
	defer srv.Close()

	c := NewHTTPSearchClient(WithSearchURL(srv.URL))

	page, err := c.FetchPage(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Len(t, page.Ads, 2)
	assert.Equal(t, "101", page.Ads[0].ID)
	assert.Equal(t, "Apartment", page.Ads[0].Title)
	assert.Equal(t, "45", page.Ads[0].Surface)
	assert.Equal(t, "102", page.Ads[1].ID)
	assert.Empty(t, page.Ads[1].Surface)
	assert.Equal(t, "http://example.com/page/2", page.NextPage)
}

func TestFetchPageLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<recherche><annonces></annonces></recherche>`))
	}))
	defer srv.Close()

	c := NewHTTPSearchClient()

	page, err := c.FetchPage(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Empty(t, page.Ads)
	assert.Empty(t, page.NextPage)
}

func TestFetchPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPSearchClient()

	_, err := c.FetchPage(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchPageBadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not xml at all`))
	}))
	defer srv.Close()

	c := NewHTTPSearchClient()

	_, err := c.FetchPage(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchPageCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePageXML))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewHTTPSearchClient(WithRateLimiter(NewRateLimiter(1, 1)))

	_, err := c.FetchPage(ctx, srv.URL)
	require.Error(t, err)
}
