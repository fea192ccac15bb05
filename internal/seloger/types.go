package seloger

// Ad is a single raw ad record as returned by the search endpoint.
// Field values arrive as text and may be empty; normalization to the
// Unknown sentinel happens in ToListing, not here.
type Ad struct {
	ID          string `xml:"idAnnonce"`
	Title       string `xml:"titre"`
	Description string `xml:"descriptif"`
	Price       string `xml:"prix"`
	PriceUnit   string `xml:"prixUnite"`
	Rooms       string `xml:"nbPiece"`
	Bedrooms    string `xml:"nbChambre"`
	Surface     string `xml:"surface"`
	SurfaceUnit string `xml:"surfaceUnite"`
	PostalCode  string `xml:"cp"`
	City        string `xml:"ville"`
	Country     string `xml:"pays"`
	Latitude    string `xml:"latitude"`
	Longitude   string `xml:"longitude"`
	PhotoCount  string `xml:"nbPhotos"`
	Thumbnail   string `xml:"firstThumb"`
	Permalink   string `xml:"permaLien"`
	PublishedAt string `xml:"dtCreation"`
}

// searchAPIResponse mirrors the XML document wrapping one result page.
type searchAPIResponse struct {
	Ads      []Ad   `xml:"annonces>annonce"`
	NextPage string `xml:"pageSuivante"`
}

// Page is one parsed result page. NextPage is the absolute URL of the
// following page, or empty when the result set is exhausted.
type Page struct {
	Ads      []Ad
	NextPage string
}
