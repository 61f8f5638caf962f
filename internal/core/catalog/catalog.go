// Package catalog holds the static reference dataset of billboards and
// their campaigns. The analytics core treats this data as immutable: it
// supplies identity, traffic estimates and campaign budgets, and is
// never written to.
package catalog

import "ooh-analytics/internal/core/domain"

var billboards = []domain.Billboard{
	{
		ID:       "bb-001",
		Name:     "Third Mainland Bridge Gantry",
		Location: "Third Mainland Bridge, Oworonshoki-bound",
		City:     domain.CityLagos,
		Coordinates: domain.Coordinates{
			Lat: 6.5355,
			Lng: 3.3958,
		},
		Status:        domain.StatusActive,
		Size:          "18m x 6m",
		DailyTraffic:  285000,
		InstalledDate: "2024-03-15",
		Campaign: domain.Campaign{
			ID:          "cmp-001",
			Name:        "Unlimited Nights",
			Advertiser:  "SwiftTel Nigeria",
			Product:     "SwiftTel Night Data Plan",
			Description: "Unlimited streaming data from midnight to 6am on the SwiftTel 5G network.",
			StartDate:   "2025-05-01",
			EndDate:     "2025-11-30",
			Budget:      4500000,
			TargetURL:   "https://swifttel.example.ng/night-plan",
			Creative:    "The city sleeps. Your downloads don't.",
		},
	},
	{
		ID:       "bb-002",
		Name:     "Admiralty Junction Unipole",
		Location: "Lekki-Epe Expressway, Admiralty Way Junction",
		City:     domain.CityLagos,
		Coordinates: domain.Coordinates{
			Lat: 6.4478,
			Lng: 3.4723,
		},
		Status:        domain.StatusActive,
		Size:          "12m x 6m",
		DailyTraffic:  195000,
		InstalledDate: "2023-11-02",
		Campaign: domain.Campaign{
			ID:          "cmp-002",
			Name:        "Zero Fees Friday",
			Advertiser:  "Kora Bank",
			Product:     "Kora Mobile App",
			Description: "Free transfers every Friday for Kora app users. Download and verify in minutes.",
			StartDate:   "2025-06-15",
			EndDate:     "2025-12-31",
			Budget:      6200000,
			TargetURL:   "https://korabank.example.ng/app",
			Creative:    "Your money moves free on Fridays.",
		},
	},
	{
		ID:       "bb-003",
		Name:     "Maryland Interchange Board",
		Location: "Ikorodu Road, Maryland bus stop",
		City:     domain.CityLagos,
		Coordinates: domain.Coordinates{
			Lat: 6.5702,
			Lng: 3.3659,
		},
		Status:        domain.StatusActive,
		Size:          "15m x 5m",
		DailyTraffic:  240000,
		InstalledDate: "2024-07-20",
		Campaign: domain.Campaign{
			ID:          "cmp-003",
			Name:        "Chill Different",
			Advertiser:  "Savanna Breweries",
			Product:     "Savanna Zero Lager",
			Description: "Full lager taste, zero alcohol. Available chilled at stores across Lagos.",
			StartDate:   "2025-04-01",
			EndDate:     "2025-10-31",
			Budget:      3800000,
			TargetURL:   "https://savanna.example.ng/zero",
			Creative:    "All the cold. None of the morning after.",
		},
	},
	{
		ID:       "bb-004",
		Name:     "Airport Road Arrival Corridor",
		Location: "Umaru Musa Yar'Adua Expressway, airport-bound",
		City:     domain.CityAbuja,
		Coordinates: domain.Coordinates{
			Lat: 9.0065,
			Lng: 7.2632,
		},
		Status:        domain.StatusActive,
		Size:          "12m x 4m",
		DailyTraffic:  120000,
		InstalledDate: "2024-01-10",
		Campaign: domain.Campaign{
			ID:          "cmp-004",
			Name:        "Fly Direct",
			Advertiser:  "Harmattan Air",
			Product:     "Abuja-London Direct Route",
			Description: "Non-stop Abuja to London four times weekly. Early-bird fares now open.",
			StartDate:   "2025-07-01",
			EndDate:     "2026-01-31",
			Budget:      7500000,
			TargetURL:   "https://harmattanair.example.ng/direct",
			Creative:    "Skip the layover. Keep the evening.",
		},
	},
	{
		ID:       "bb-005",
		Name:     "Central Business District Tower",
		Location: "Ahmadu Bello Way, opposite Silverbird",
		City:     domain.CityAbuja,
		Coordinates: domain.Coordinates{
			Lat: 9.0579,
			Lng: 7.4891,
		},
		Status:        domain.StatusMaintenance,
		Size:          "10m x 5m",
		DailyTraffic:  95000,
		InstalledDate: "2023-05-18",
		Campaign: domain.Campaign{
			ID:          "cmp-005",
			Name:        "Dinner In Thirty",
			Advertiser:  "ChopNow",
			Product:     "ChopNow Delivery App",
			Description: "Hot meals from 400+ Abuja kitchens delivered in thirty minutes or the delivery is free.",
			StartDate:   "2025-03-01",
			EndDate:     "2025-12-15",
			Budget:      2900000,
			TargetURL:   "https://chopnow.example.ng/download",
			Creative:    "Order at the traffic light. Eat at home.",
		},
	},
	{
		ID:       "bb-006",
		Name:     "Wuse Market Junction Board",
		Location: "Herbert Macaulay Way, Wuse Zone 5",
		City:     domain.CityAbuja,
		Coordinates: domain.Coordinates{
			Lat: 9.0698,
			Lng: 7.4588,
		},
		Status:        domain.StatusActive,
		Size:          "9m x 4m",
		DailyTraffic:  110000,
		InstalledDate: "2024-09-05",
		Campaign: domain.Campaign{
			ID:          "cmp-006",
			Name:        "Power That Stays",
			Advertiser:  "SunCore Energy",
			Product:     "SunCore Home Solar Kit",
			Description: "Solar and battery bundles with zero-deposit installment plans for Abuja homes.",
			StartDate:   "2025-05-20",
			EndDate:     "2026-02-28",
			Budget:      5100000,
			TargetURL:   "https://suncore.example.ng/home-kit",
			Creative:    "NEPA took light. You didn't notice.",
		},
	},
}

// All returns the full billboard catalog. The returned slice is shared
// reference data and must not be modified.
func All() []domain.Billboard {
	return billboards
}

// Find returns the billboard with the given id, if present.
func Find(id string) (domain.Billboard, bool) {
	for _, b := range billboards {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Billboard{}, false
}
