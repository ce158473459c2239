package domain

// Flight is catalog reference data; times are local time-of-day strings.
type Flight struct {
	ID       string `json:"id"`
	Airline  string `json:"airline"`
	From     string `json:"from"`
	FromTime string `json:"fromTime"`
	To       string `json:"to"`
	ToTime   string `json:"toTime"`
	Duration string `json:"duration"`
	Price    int64  `json:"price"`
	Perks    string `json:"perks"`
	Promo    string `json:"promo"`
}
