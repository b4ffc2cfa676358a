// Package neo defines the entity model for near-Earth objects and their
// close-approach events. Entities are created by the loader, linked once
// during database construction, and read-only afterwards.
package neo

import (
	"fmt"
	"math"
	"time"
)

// NearEarthObject is a single near-Earth object from the NASA small-body
// dataset. Designation is the unique primary identifier. Name is empty when
// the object has no IAU name, and Diameter is NaN when unknown — NaN
// propagates through comparisons as always-false rather than crashing
// anything downstream.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64 // kilometers; NaN when unknown
	Hazardous   bool

	// Approaches holds back-references to this object's close approaches,
	// in dataset order. Populated during database construction; the NEO
	// does not own the approaches, it only indexes them.
	Approaches []*CloseApproach
}

// FullName returns the designation plus the IAU name when one exists,
// e.g. "433 (Eros)".
func (n *NearEarthObject) FullName() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

// HasDiameter reports whether the object's diameter is known.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// String describes the object for human-readable output.
func (n *NearEarthObject) String() string {
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	if !n.HasDiameter() {
		return fmt.Sprintf("NEO %s has an unknown diameter and %s potentially hazardous.", n.FullName(), hazard)
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous.", n.FullName(), n.Diameter, hazard)
}

// CloseApproach is one recorded event of an NEO passing near Earth.
// Designation is the foreign key into the NEO collection; NEO is the
// resolved reference, set once during database construction and shared by
// every approach of the same object.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    float64 // astronomical units
	Velocity    float64 // km/s

	NEO *NearEarthObject
}

// TimeString formats the approach time the way the source dataset does.
func (c *CloseApproach) TimeString() string {
	return c.Time.Format("2006-01-02 15:04")
}

// String describes the approach for human-readable output.
func (c *CloseApproach) String() string {
	name := c.Designation
	if c.NEO != nil {
		name = c.NEO.FullName()
	}
	return fmt.Sprintf("At %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		c.TimeString(), name, c.Distance, c.Velocity)
}
