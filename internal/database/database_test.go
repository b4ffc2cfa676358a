package database

import (
	"math"
	"testing"
	"time"

	"github.com/orbitalmech/neoscope/internal/filter"
	"github.com/orbitalmech/neoscope/internal/neo"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 12, 0, 0, 0, time.UTC)
}

// fixture builds a small database with mixed attributes: five approaches
// across three NEOs plus one approach with a dangling designation.
func fixture() (*Database, []*neo.CloseApproach) {
	neos := []*neo.NearEarthObject{
		{Designation: "433", Name: "Eros", Diameter: 16.84, Hazardous: false},
		{Designation: "2020 AY1", Diameter: math.NaN(), Hazardous: true},
		{Designation: "1036", Name: "Ganymed", Diameter: 37.7, Hazardous: false},
	}
	approaches := []*neo.CloseApproach{
		{Designation: "433", Time: day(1), Distance: 0.30, Velocity: 5.0},
		{Designation: "2020 AY1", Time: day(2), Distance: 0.04, Velocity: 25.0},
		{Designation: "1036", Time: day(3), Distance: 0.25, Velocity: 12.0},
		{Designation: "2020 AY1", Time: day(4), Distance: 0.08, Velocity: 30.0},
		{Designation: "9999", Time: day(5), Distance: 0.50, Velocity: 8.0}, // dangling
	}
	return New(neos, approaches), approaches
}

func collect(db *Database, filters []filter.Filter, limit int) []*neo.CloseApproach {
	var out []*neo.CloseApproach
	for ca := range db.Query(filters, limit) {
		out = append(out, ca)
	}
	return out
}

func TestNEOByDesignation(t *testing.T) {
	t.Parallel()
	db, _ := fixture()

	n, ok := db.NEOByDesignation("433")
	if !ok || n.Name != "Eros" {
		t.Fatalf("NEOByDesignation(433) = %v, %v, want Eros", n, ok)
	}
	if _, ok := db.NEOByDesignation("no-such"); ok {
		t.Error("NEOByDesignation(no-such) reported present")
	}
	// A designation only seen in the approach data is not a loaded NEO.
	if _, ok := db.NEOByDesignation("9999"); ok {
		t.Error("NEOByDesignation(9999) reported present for a dangling designation")
	}
}

func TestNEOByName(t *testing.T) {
	t.Parallel()
	db, _ := fixture()

	n, ok := db.NEOByName("Ganymed")
	if !ok || n.Designation != "1036" {
		t.Fatalf("NEOByName(Ganymed) = %v, %v, want 1036", n, ok)
	}
	if _, ok := db.NEOByName("Vesta"); ok {
		t.Error("NEOByName(Vesta) reported present")
	}
	// The empty string never matches an unnamed NEO.
	if _, ok := db.NEOByName(""); ok {
		t.Error("NEOByName(\"\") matched an unnamed NEO")
	}
}

func TestNEOByName_FirstInInputOrder(t *testing.T) {
	t.Parallel()
	first := &neo.NearEarthObject{Designation: "a", Name: "Twin"}
	second := &neo.NearEarthObject{Designation: "b", Name: "Twin"}
	db := New([]*neo.NearEarthObject{first, second}, nil)

	n, ok := db.NEOByName("Twin")
	if !ok || n != first {
		t.Errorf("NEOByName(Twin) = %v, want the first NEO in input order", n)
	}
}

func TestNew_LinksApproaches(t *testing.T) {
	t.Parallel()
	db, approaches := fixture()

	eros, _ := db.NEOByDesignation("433")
	if approaches[0].NEO != eros {
		t.Error("approach NEO reference is not the identical indexed object")
	}
	if len(eros.Approaches) != 1 || eros.Approaches[0] != approaches[0] {
		t.Errorf("Eros.Approaches = %v, want exactly the linked approach", eros.Approaches)
	}

	ay, _ := db.NEOByDesignation("2020 AY1")
	if len(ay.Approaches) != 2 {
		t.Fatalf("2020 AY1 has %d approaches, want 2", len(ay.Approaches))
	}
	// Input order preserved.
	if ay.Approaches[0] != approaches[1] || ay.Approaches[1] != approaches[3] {
		t.Error("approaches not appended in input order")
	}
}

func TestNew_DanglingDesignationGetsPlaceholder(t *testing.T) {
	t.Parallel()
	_, approaches := fixture()

	dangling := approaches[4]
	if dangling.NEO == nil {
		t.Fatal("dangling approach has nil NEO")
	}
	if dangling.NEO.Designation != "9999" {
		t.Errorf("placeholder designation = %q, want 9999", dangling.NEO.Designation)
	}
	if dangling.NEO.Name != "" || dangling.NEO.Hazardous {
		t.Error("placeholder must carry no attributes beyond the designation")
	}
	if !math.IsNaN(dangling.NEO.Diameter) {
		t.Errorf("placeholder diameter = %v, want NaN", dangling.NEO.Diameter)
	}
}

func TestNew_SharedPlaceholder(t *testing.T) {
	t.Parallel()
	approaches := []*neo.CloseApproach{
		{Designation: "x", Time: day(1)},
		{Designation: "x", Time: day(2)},
	}
	New(nil, approaches)
	if approaches[0].NEO != approaches[1].NEO {
		t.Error("approaches with the same dangling designation must share one placeholder")
	}
}

func TestNew_DuplicateDesignationFirstWins(t *testing.T) {
	t.Parallel()
	first := &neo.NearEarthObject{Designation: "dup", Name: "First"}
	second := &neo.NearEarthObject{Designation: "dup", Name: "Second"}
	db := New([]*neo.NearEarthObject{first, second}, nil)

	n, _ := db.NEOByDesignation("dup")
	if n != first {
		t.Errorf("NEOByDesignation(dup) = %v, want the first occurrence", n)
	}
}

func TestQuery_NoFiltersReturnsAllInOrder(t *testing.T) {
	t.Parallel()
	db, approaches := fixture()

	got := collect(db, nil, 0)
	if len(got) != len(approaches) {
		t.Fatalf("Query(nil, 0) yielded %d approaches, want %d", len(got), len(approaches))
	}
	for i := range got {
		if got[i] != approaches[i] {
			t.Fatalf("Query(nil, 0)[%d] out of input order", i)
		}
	}
}

func TestQuery_LimitIsPrefixOfUnbounded(t *testing.T) {
	t.Parallel()
	db, _ := fixture()
	filters := filter.Criteria{DistanceMin: f(0.05)}.Build()

	all := collect(db, filters, 0)
	capped := collect(db, filters, 2)

	if len(capped) != 2 {
		t.Fatalf("Query(filters, 2) yielded %d, want 2", len(capped))
	}
	for i := range capped {
		if capped[i] != all[i] {
			t.Errorf("capped[%d] differs from unbounded prefix", i)
		}
	}
}

func TestQuery_CombinedFilters(t *testing.T) {
	t.Parallel()
	db, approaches := fixture()

	haz := true
	crit := filter.Criteria{DistanceMin: f(0.05), Hazardous: &haz}
	got := collect(db, crit.Build(), 0)

	// Only the 2020 AY1 approach at distance 0.08 passes both bounds.
	if len(got) != 1 || got[0] != approaches[3] {
		t.Fatalf("Query(distance>=0.05 AND hazardous) = %v, want exactly approaches[3]", got)
	}
	for _, ca := range got {
		if ca.Distance < 0.05 || !ca.NEO.Hazardous {
			t.Errorf("matched approach violates a filter: %v", ca)
		}
	}
}

func TestQuery_Idempotent(t *testing.T) {
	t.Parallel()
	db, _ := fixture()
	filters := filter.Criteria{VelocityMin: f(10)}.Build()

	first := collect(db, filters, 2)
	second := collect(db, filters, 2)

	if len(first) != len(second) {
		t.Fatalf("repeated query sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated query differs at %d", i)
		}
	}
}

func TestQuery_ConcreteScenario(t *testing.T) {
	t.Parallel()
	eros := &neo.NearEarthObject{Designation: "2000433", Name: "Eros", Diameter: 16.84}
	ca := &neo.CloseApproach{Designation: "2000433", Time: day(1), Distance: 0.3, Velocity: 5.0}
	db := New([]*neo.NearEarthObject{eros}, []*neo.CloseApproach{ca})

	got := collect(db, filter.Criteria{DistanceMax: f(0.5)}.Build(), 0)
	if len(got) != 1 || got[0] != ca {
		t.Fatalf("Query(distance<=0.5) = %v, want the single approach", got)
	}

	got = collect(db, filter.Criteria{DistanceMax: f(0.1)}.Build(), 0)
	if len(got) != 0 {
		t.Fatalf("Query(distance<=0.1) = %v, want empty", got)
	}
}

func TestQuery_PlaceholderNeverMatchesNEOFilters(t *testing.T) {
	t.Parallel()
	db, approaches := fixture()

	// The dangling approach reads defaults: NaN diameter, not hazardous.
	got := collect(db, filter.Criteria{DiameterMin: f(0)}.Build(), 0)
	for _, ca := range got {
		if ca == approaches[4] {
			t.Error("placeholder-backed approach passed a diameter bound")
		}
	}

	haz := false
	got = collect(db, filter.Criteria{Hazardous: &haz}.Build(), 0)
	found := false
	for _, ca := range got {
		if ca == approaches[4] {
			found = true
		}
	}
	if !found {
		t.Error("placeholder-backed approach should read as not hazardous")
	}
}

func f(v float64) *float64 { return &v }
