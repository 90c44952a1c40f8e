// Package dashboard holds the static business overview shown on the first tab.
package dashboard

type Metric struct {
	Title    string
	Value    string
	Trend    string
	Positive bool
}

type RevenueShare struct {
	Source string
	Amount string
	Share  string
}

type Activity struct {
	Title     string
	Subtitle  string
	Timestamp string
}

type Snapshot struct {
	Title       string
	Subtitle    string
	Metrics     []Metric
	Revenue     []RevenueShare
	TopExpense  string
	NextPayroll string
	Activity    []Activity
}

func Default() Snapshot {
	return Snapshot{
		Title:    "Back Alley Lanes",
		Subtitle: "Operational overview • Updated just now",
		Metrics: []Metric{
			{Title: "Monthly Revenue", Value: "$42,560", Trend: "+12.4% vs last month", Positive: true},
			{Title: "Monthly Expenses", Value: "$18,920", Trend: "+4.1% vs last month", Positive: false},
			{Title: "Net Profit", Value: "$23,640", Trend: "+8.3% vs last month", Positive: true},
			{Title: "Average Lane Utilization", Value: "78%", Trend: "+6 pts vs last month", Positive: true},
		},
		Revenue: []RevenueShare{
			{Source: "Lanes", Amount: "$27,300", Share: "64%"},
			{Source: "Food & Beverage", Amount: "$11,080", Share: "26%"},
			{Source: "Pro Shop", Amount: "$4,180", Share: "10%"},
		},
		TopExpense:  "Staffing · $9,450",
		NextPayroll: "Due in 4 days",
		Activity: []Activity{
			{Title: "League Night Booked", Subtitle: "12 lanes reserved • 6:00 PM", Timestamp: "15m ago"},
			{Title: "Corporate Event Inquiry", Subtitle: "Pending approval • 30 guests", Timestamp: "1h ago"},
			{Title: "Inventory Check", Subtitle: "Pins +8% • Balls -3%", Timestamp: "3h ago"},
		},
	}
}

// TrendArrow is the direction marker drawn next to a metric trend.
func (m Metric) TrendArrow() string {
	if m.Positive {
		return "↗"
	}
	return "↘"
}
