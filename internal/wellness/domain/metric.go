package domain

// AttributeValue is a single dated sample as returned by Exist.io.
// Value is nil when the provider has no data for that day.
type AttributeValue struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// AttributeRecord is one provider-defined time series from the
// attributes/with-values endpoint.
type AttributeRecord struct {
	Name   string           `json:"name"`
	Label  string           `json:"label"`
	Values []AttributeValue `json:"values"`
}

// MetricSample is one normalized data point in a dashboard series.
type MetricSample struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// WellnessData is the fixed dataset contract the dashboard depends on.
// All four series are always present, possibly empty.
type WellnessData struct {
	Steps        []MetricSample `json:"steps"`
	Sleep        []MetricSample `json:"sleep"`
	Meditation   []MetricSample `json:"meditation"`
	Productivity []MetricSample `json:"productivity"`
}

func NewWellnessData() *WellnessData {
	return &WellnessData{
		Steps:        []MetricSample{},
		Sleep:        []MetricSample{},
		Meditation:   []MetricSample{},
		Productivity: []MetricSample{},
	}
}

func (d *WellnessData) TotalSamples() int {
	return len(d.Steps) + len(d.Sleep) + len(d.Meditation) + len(d.Productivity)
}

// SetSeries assigns a series by its dashboard metric key. Unknown keys
// are ignored.
func (d *WellnessData) SetSeries(metric string, samples []MetricSample) {
	switch metric {
	case MetricSteps:
		d.Steps = samples
	case MetricSleep:
		d.Sleep = samples
	case MetricMeditation:
		d.Meditation = samples
	case MetricProductivity:
		d.Productivity = samples
	}
}

const (
	MetricSteps        = "steps"
	MetricSleep        = "sleep"
	MetricMeditation   = "meditation"
	MetricProductivity = "productivity"
)

// MetricMapping ties a provider attribute name to a dashboard metric key.
// MinutesToHours marks attributes the provider reports in minutes that
// the dashboard displays in hours.
type MetricMapping struct {
	Attribute      string
	Metric         string
	Unit           string
	MinutesToHours bool
}

// DefaultMetricMappings returns the fixed attribute allow-list the
// dashboard is built around.
func DefaultMetricMappings() []MetricMapping {
	return []MetricMapping{
		{Attribute: "steps", Metric: MetricSteps, Unit: "steps"},
		{Attribute: "sleep", Metric: MetricSleep, Unit: "hours", MinutesToHours: true},
		{Attribute: "meditation_min", Metric: MetricMeditation, Unit: "minutes"},
		{Attribute: "productive_min", Metric: MetricProductivity, Unit: "hours", MinutesToHours: true},
	}
}

// AttributeNames returns the provider attribute names of the mappings in
// order, for the fetch allow-list.
func AttributeNames(mappings []MetricMapping) []string {
	names := make([]string, 0, len(mappings))
	for _, m := range mappings {
		names = append(names, m.Attribute)
	}
	return names
}
