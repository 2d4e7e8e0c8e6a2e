package models

// LocationRecord is the normalized result of a lookup.
// All its fields are set, either from the geolocation service or from
// the fallback data, before it is handed to the display layer.
type LocationRecord struct {
	IP         string  `json:"ip"`
	Country    string  `json:"country"`
	Region     string  `json:"region"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	PostalCode string  `json:"postal_code"`
	Timezone   string  `json:"timezone"`
	ISP        string  `json:"isp"`
}
