package meristem

// Value is one extracted descriptor: a finite number, or a short categorical
// label (currently only the musical key).
type Value struct {
	Number float64 `json:"number"`
	Label  string  `json:"label,omitempty"`
}

// Categorical reports whether the value carries a label instead of a number.
func (v Value) Categorical() bool {
	return v.Label != ""
}

// Num wraps a numeric descriptor value.
func Num(f float64) Value {
	return Value{Number: f}
}

// Cat wraps a categorical descriptor value.
func Cat(s string) Value {
	return Value{Label: s}
}

// FeatureRecord holds one track's extracted descriptors, keyed by feature
// name. Track carries the source filename and is used for reporting only; it
// never participates in comparison. Records are immutable once produced.
type FeatureRecord struct {
	Track    string           `json:"track"`
	Features map[string]Value `json:"features"`
}

// Value returns the named feature and whether it is present.
func (r *FeatureRecord) Value(name string) (Value, bool) {
	v, ok := r.Features[name]

	return v, ok
}

func (r *FeatureRecord) refValue(name string) (Value, bool) {
	return r.Value(name)
}

// Stats summarizes one feature across a collection of records. Numeric
// features fill the dispersion fields; categorical features carry only the
// mode (most frequent label).
type Stats struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Mode   string  `json:"mode,omitempty"`
}

// Categorical reports whether the stats describe a categorical feature.
func (s Stats) Categorical() bool {
	return s.Mode != ""
}

// Profile maps feature names to aggregated statistics over a set of records.
// It is built once by Aggregate and never mutated; rebuild it when the
// underlying track list changes. An empty track list yields an empty Profile.
type Profile map[string]Stats

func (p Profile) refValue(name string) (Value, bool) {
	s, ok := p[name]
	if !ok {
		return Value{}, false
	}

	if s.Categorical() {
		return Cat(s.Mode), true
	}

	return Num(s.Mean), true
}

// Reference is a comparison target: either a single track's FeatureRecord or
// an aggregated Profile (which compares against per-feature mean/mode).
type Reference interface {
	refValue(name string) (Value, bool)
}

// Status grades how closely a feature matches its reference.
type Status int

const (
	StatusPerfect Status = iota
	StatusGood
	StatusWarning
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusPerfect:
		return "perfect"
	case StatusGood:
		return "good"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Verdict is one per-feature comparison outcome. The first verdict of a
// Comparison is the synthetic overall match and carries Score; feature
// verdicts leave Score at zero.
type Verdict struct {
	Feature string  `json:"feature"`
	Status  Status  `json:"status"`
	Message string  `json:"message"`
	Score   float64 `json:"score,omitempty"`
}

// Comparison is the ordered outcome of comparing a candidate against a
// reference: the overall match verdict first, then one verdict per feature
// present on both sides, in canonical feature order.
type Comparison struct {
	Verdicts []Verdict `json:"verdicts"`
}

// Score returns the overall 0-100 match score.
func (c *Comparison) Score() float64 {
	if len(c.Verdicts) == 0 {
		return 0
	}

	return c.Verdicts[0].Score
}

// Recommendation is a presentation-ready projection of one verdict.
type Recommendation struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Status     Status `json:"status"`
}
