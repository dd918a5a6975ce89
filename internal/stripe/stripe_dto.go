package stripe

type CreateSessionRequest struct {
	SuccessURL string     `json:"successUrl"`
	CancelURL  string     `json:"cancelUrl"`
	Items      []LineItem `json:"items"`
}

// LineItem is one priced entry of the hosted checkout page. UnitAmountMinor
// is in the currency's smallest denomination (öre for SEK).
type LineItem struct {
	Currency        string `json:"currency"`
	ProductName     string `json:"productName"`
	UnitAmountMinor int64  `json:"unitAmountMinor"`
	Quantity        int64  `json:"quantity"`
}

type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
