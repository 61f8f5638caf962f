package domain

// City enumerates the markets billboards are deployed in.
type City string

const (
	CityLagos City = "Lagos"
	CityAbuja City = "Abuja"
)

// BillboardStatus describes the lifecycle state of a placement.
type BillboardStatus string

const (
	StatusActive      BillboardStatus = "active"
	StatusInactive    BillboardStatus = "inactive"
	StatusMaintenance BillboardStatus = "maintenance"
)

// Coordinates is a latitude/longitude pair for a physical placement.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Billboard represents a physical, trackable out-of-home placement with
// exactly one associated campaign. Billboards are immutable reference
// data; the analytics core never creates or modifies them.
type Billboard struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	City          City            `json:"city"`
	Coordinates   Coordinates     `json:"coordinates"`
	Campaign      Campaign        `json:"campaign"`
	Status        BillboardStatus `json:"status"`
	Size          string          `json:"size"`
	DailyTraffic  int             `json:"dailyTraffic"`
	InstalledDate string          `json:"installedDate"`
}
