package reddit

// envelope wraps every request and response body of the API.
type envelope[T any] struct {
	Data T `json:"data"`
}

type pagination struct {
	NextURL string `json:"next_url,omitempty"`
}

type listEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields,omitempty"`
	} `json:"error"`
}

type campaignPayload struct {
	ID                  string `json:"id,omitempty"`
	Name                string `json:"name"`
	FundingInstrumentID string `json:"funding_instrument_id,omitempty"`
	ConfiguredStatus    string `json:"configured_status,omitempty"`
}

type adGroupPayload struct {
	ID               string `json:"id,omitempty"`
	CampaignID       string `json:"campaign_id,omitempty"`
	Name             string `json:"name"`
	ConfiguredStatus string `json:"configured_status,omitempty"`
}

type adPayload struct {
	ID               string `json:"id,omitempty"`
	AdGroupID        string `json:"ad_group_id,omitempty"`
	Name             string `json:"name"`
	Headline         string `json:"headline"`
	Body             string `json:"body,omitempty"`
	DisplayURL       string `json:"display_url,omitempty"`
	ClickURL         string `json:"click_url"`
	ConfiguredStatus string `json:"configured_status,omitempty"`
}

type keywordPayload struct {
	ID        string `json:"id,omitempty"`
	AdGroupID string `json:"ad_group_id,omitempty"`
	Text      string `json:"text"`
	MatchType string `json:"match_type"`
}

// remoteRef is the minimal shape of any created or listed entity.
type remoteRef struct {
	ID string `json:"id"`
}
