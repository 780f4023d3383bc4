package models

// CheckoutRequest carries the parameters for creating a hosted Stripe
// checkout session for a pending booking. Amount is in ZAR major units.
type CheckoutRequest struct {
	BookingID  string  `json:"bookingId"`
	ItemName   string  `json:"accommodationName"`
	Amount     float64 `json:"amount"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	UserID     string  `json:"userId"`
	UserEmail  string  `json:"userEmail"`
	ItemID     string  `json:"accommodationId"`
	SuccessURL string  `json:"successUrl,omitempty"`
	CancelURL  string  `json:"cancelUrl,omitempty"`
}

// CheckoutSession is the issuer response: the hosted session identifier
// and the URL the browser must be redirected to.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Success   bool   `json:"success"`
}
