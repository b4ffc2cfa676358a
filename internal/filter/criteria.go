package filter

import "time"

// Criteria holds the independently optional bounds of a query. A nil pointer
// means the bound was not supplied; a non-nil pointer is an active constraint
// even when it points at zero, so a minimum distance of 0 filters exactly as
// written. Hazardous is tri-state for the same reason: nil means no
// constraint, true/false means exact match.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// Build converts the criteria into one Filter per supplied bound. The
// filters combine with AND; Date and StartDate/EndDate may be supplied
// together. An empty Criteria yields an empty (match-everything) set.
func (c Criteria) Build() []Filter {
	var filters []Filter

	if c.Date != nil {
		filters = append(filters, Filter{Field: FieldDate, Op: OpEq, Date: *c.Date})
	}
	if c.StartDate != nil {
		filters = append(filters, Filter{Field: FieldDate, Op: OpGE, Date: *c.StartDate})
	}
	if c.EndDate != nil {
		filters = append(filters, Filter{Field: FieldDate, Op: OpLE, Date: *c.EndDate})
	}

	numeric := []struct {
		bound *float64
		field Field
		op    Op
	}{
		{c.DistanceMin, FieldDistance, OpGE},
		{c.DistanceMax, FieldDistance, OpLE},
		{c.VelocityMin, FieldVelocity, OpGE},
		{c.VelocityMax, FieldVelocity, OpLE},
		{c.DiameterMin, FieldDiameter, OpGE},
		{c.DiameterMax, FieldDiameter, OpLE},
	}
	for _, n := range numeric {
		if n.bound != nil {
			filters = append(filters, Filter{Field: n.field, Op: n.op, Value: *n.bound})
		}
	}

	if c.Hazardous != nil {
		filters = append(filters, Filter{Field: FieldHazardous, Op: OpEq, Bool: *c.Hazardous})
	}

	return filters
}

// Merge overlays the receiver's supplied bounds onto base and returns the
// result. Bounds present in c win; bounds absent in c fall through to base.
// Used to apply explicit flags on top of a stored preset.
func (c Criteria) Merge(base Criteria) Criteria {
	out := base
	if c.Date != nil {
		out.Date = c.Date
	}
	if c.StartDate != nil {
		out.StartDate = c.StartDate
	}
	if c.EndDate != nil {
		out.EndDate = c.EndDate
	}
	if c.DistanceMin != nil {
		out.DistanceMin = c.DistanceMin
	}
	if c.DistanceMax != nil {
		out.DistanceMax = c.DistanceMax
	}
	if c.VelocityMin != nil {
		out.VelocityMin = c.VelocityMin
	}
	if c.VelocityMax != nil {
		out.VelocityMax = c.VelocityMax
	}
	if c.DiameterMin != nil {
		out.DiameterMin = c.DiameterMin
	}
	if c.DiameterMax != nil {
		out.DiameterMax = c.DiameterMax
	}
	if c.Hazardous != nil {
		out.Hazardous = c.Hazardous
	}
	return out
}
