package places

// searchTextRequest is the body of a Places Text Search (New) call.
type searchTextRequest struct {
	TextQuery string `json:"textQuery"`
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchTextResponse struct {
	Places        []apiPlace `json:"places"`
	NextPageToken string     `json:"nextPageToken"`
}

type apiPlace struct {
	DisplayName              displayName `json:"displayName"`
	FormattedAddress         string      `json:"formattedAddress"`
	NationalPhoneNumber      string      `json:"nationalPhoneNumber"`
	InternationalPhoneNumber string      `json:"internationalPhoneNumber"`
	WebsiteURI               string      `json:"websiteUri"`
	GoogleMapsURI            string      `json:"googleMapsUri"`
	Rating                   *float64    `json:"rating"`
	UserRatingCount          *int        `json:"userRatingCount"`
}

type displayName struct {
	Text string `json:"text"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
