package models

const (
	UnitHours = "hours"
	UnitDays  = "days"
)

const (
	ModeHours = "hours"
	ModeDays  = "days"
)

// Duration is a value plus unit pair, e.g. {3, "days"}.
type Duration struct {
	Value int    `bson:"value" json:"value"`
	Unit  string `bson:"unit" json:"unit"` // "hours" | "days"
}

// IsZero reports whether the duration is absent or non-positive.
func (d Duration) IsZero() bool {
	return d.Value <= 0
}

// ServiceSpec describes the work to be scheduled, derived from a project or
// subproject configuration.
type ServiceSpec struct {
	Mode        string   `bson:"mode" json:"mode"` // "hours" | "days"
	Preparation Duration `bson:"preparation" json:"preparation,omitzero"`
	Execution   Duration `bson:"execution" json:"execution"`
	Buffer      Duration `bson:"buffer" json:"buffer,omitzero"`

	// MinResources is the number of resources that must work the job
	// concurrently. Defaults to 1.
	MinResources int `bson:"minResources,omitempty" json:"minResources,omitempty"`

	// MinOverlapPercent is the minimum cross-resource availability overlap
	// (0-100) for multi-person jobs. Defaults to 70.
	MinOverlapPercent float64 `bson:"minOverlapPercent,omitempty" json:"minOverlapPercent,omitempty"`
}
