package domain

// Campaign represents an advertising campaign running on a billboard.
// The budget is a currency-agnostic amount used for cost-per-scan
// calculations. Campaigns are immutable reference data owned by their
// billboard.
type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Advertiser  string  `json:"advertiser"`
	Product     string  `json:"product"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	TargetURL   string  `json:"targetUrl"`
	Creative    string  `json:"creative"`
}
