package domain

// PushAction is a notification button rendered by the service worker.
type PushAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// PushPayload is the JSON document delivered to every endpoint of a fan-out.
type PushPayload struct {
	Title   string       `json:"title"`
	Body    string       `json:"body"`
	URL     string       `json:"url"`
	Image   string       `json:"image,omitempty"`
	Icon    string       `json:"icon,omitempty"`
	Actions []PushAction `json:"actions,omitempty"`
}

// OrderScope is what the order lookup returns for composing and targeting.
type OrderScope struct {
	OrderID       string
	PharmacyID    string
	RiderID       string
	CustomerPhone string
	Address       string
	FirstItemName string
}
