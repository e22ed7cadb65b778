package model

// CarModel is one entry in the fixed model catalog.
type CarModel struct {
	Name string    `json:"name"`
	Type ModelType `json:"type"`
}

// Showroom is one entry in the fixed showroom catalog. Lat/Lng feed the map
// collaborator; the aggregation core only keys on Name.
type Showroom struct {
	Name string  `json:"name"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Consultant is one entry in the fixed sales-consultant catalog.
type Consultant struct {
	Name     string `json:"name"`
	Showroom string `json:"showroom"`
}

// AgeBucket is a fixed-boundary, inclusive age range. Every record falls into
// exactly one bucket by range membership; bucket order is the declared order
// below, never sorted by data.
type AgeBucket struct {
	Label string
	Min   int
	Max   int // inclusive; 0 means open-ended
}

// Contains reports whether age falls inside the bucket.
func (b AgeBucket) Contains(age int) bool {
	if age < b.Min {
		return false
	}
	return b.Max == 0 || age <= b.Max
}

// CarModels is the fixed model catalog.
var CarModels = []CarModel{
	{Name: "RX350", Type: TypeSUV},
	{Name: "TX500", Type: TypeSUV},
	{Name: "GX460", Type: TypeSUV},
	{Name: "ES300", Type: TypeSedan},
	{Name: "LS500", Type: TypeSedan},
	{Name: "IS350", Type: TypeSedan},
	{Name: "RC-F", Type: TypePerformance},
	{Name: "LC500", Type: TypePerformance},
}

// Showrooms is the fixed showroom catalog.
var Showrooms = []Showroom{
	{Name: "Downtown", City: "Riyadh", Lat: 24.7136, Lng: 46.6753},
	{Name: "North Plaza", City: "Riyadh", Lat: 24.8247, Lng: 46.6358},
	{Name: "Corniche", City: "Jeddah", Lat: 21.5433, Lng: 39.1728},
	{Name: "Eastern Gate", City: "Dammam", Lat: 26.4207, Lng: 50.0888},
	{Name: "Mall Branch", City: "Jeddah", Lat: 21.6298, Lng: 39.1105},
}

// LeadSources is the fixed lead-source catalog. Funnel rollups pre-initialize
// a zero row for every entry here, so a source with no filtered records still
// appears with all-zero counts.
var LeadSources = []string{
	"Instagram",
	"Facebook",
	"Website Organic",
	"Google Ads",
	"Call Center",
	"Walk-in",
	"Referral",
}

// Consultants is the fixed sales-consultant catalog.
var Consultants = []Consultant{
	{Name: "Khalid Rahman", Showroom: "Downtown"},
	{Name: "Sara Al-Otaibi", Showroom: "Downtown"},
	{Name: "Omar Hassan", Showroom: "North Plaza"},
	{Name: "Layla Ibrahim", Showroom: "North Plaza"},
	{Name: "Faisal Qureshi", Showroom: "Corniche"},
	{Name: "Noura Al-Zahrani", Showroom: "Corniche"},
	{Name: "Tariq Mansour", Showroom: "Eastern Gate"},
	{Name: "Huda Sultan", Showroom: "Mall Branch"},
}

// AgeBuckets is the fixed age-distribution bucketing.
var AgeBuckets = []AgeBucket{
	{Label: "18-25", Min: 18, Max: 25},
	{Label: "26-35", Min: 26, Max: 35},
	{Label: "36-45", Min: 36, Max: 45},
	{Label: "46-55", Min: 46, Max: 55},
	{Label: "56+", Min: 56, Max: 0},
}

// ChannelColors maps each lead source to its chart color. Export and TUI
// both read from here so the color-to-category mapping stays consistent
// across render surfaces.
var ChannelColors = map[string]string{
	"Instagram":       "#E1306C",
	"Facebook":        "#1877F2",
	"Website Organic": "#50FA7B",
	"Google Ads":      "#FFB86C",
	"Call Center":     "#8BE9FD",
	"Walk-in":         "#BD93F9",
	"Referral":        "#F1FA8C",
}

// ModelByName returns the catalog entry for name, or nil when the name is not
// in the catalog. Unknown names are not errors; they simply match nothing.
func ModelByName(name string) *CarModel {
	for i := range CarModels {
		if CarModels[i].Name == name {
			return &CarModels[i]
		}
	}
	return nil
}

// ShowroomByName returns the catalog entry for name, or nil.
func ShowroomByName(name string) *Showroom {
	for i := range Showrooms {
		if Showrooms[i].Name == name {
			return &Showrooms[i]
		}
	}
	return nil
}

// KnownLeadSource reports whether name is in the fixed source list.
func KnownLeadSource(name string) bool {
	for _, s := range LeadSources {
		if s == name {
			return true
		}
	}
	return false
}

// BucketForAge returns the bucket containing age, or nil when the age falls
// outside every declared range (under 18 in practice).
func BucketForAge(age int) *AgeBucket {
	for i := range AgeBuckets {
		if AgeBuckets[i].Contains(age) {
			return &AgeBuckets[i]
		}
	}
	return nil
}
