package payment

type IntentRequest struct {
	Amount   float64
	Currency string
	Receipt  string
	OrderID  uint
}

// Intent is the gateway-side payment order the client SDK collects against.
// Amount is in currency subunits, as the gateway reports it.
type Intent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
