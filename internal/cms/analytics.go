package cms

// AnalyticsPoint is one day of demo traffic numbers for the admin dashboard.
// Analytics data is static seed material and never mutated.
type AnalyticsPoint struct {
	Name        string `json:"name"`
	Visits      int    `json:"visits"`
	Conversions int    `json:"conversions"`
}

var analyticsData = []AnalyticsPoint{
	{Name: "월", Visits: 400, Conversions: 12},
	{Name: "화", Visits: 300, Conversions: 8},
	{Name: "수", Visits: 600, Conversions: 22},
	{Name: "목", Visits: 800, Conversions: 45},
	{Name: "금", Visits: 700, Conversions: 38},
	{Name: "토", Visits: 1100, Conversions: 62},
	{Name: "일", Visits: 1200, Conversions: 78},
}

// Analytics returns the static dashboard series.
func Analytics() []AnalyticsPoint {
	out := make([]AnalyticsPoint, len(analyticsData))
	copy(out, analyticsData)
	return out
}
