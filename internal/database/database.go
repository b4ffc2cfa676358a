// Package database owns the loaded NEO and close-approach collections,
// resolves the link between them, and executes filtered, bounded queries.
// A Database is built once and read-only afterwards, so concurrent queries
// need no locking.
package database

import (
	"iter"
	"math"

	"github.com/orbitalmech/neoscope/internal/filter"
	"github.com/orbitalmech/neoscope/internal/neo"
)

// Database indexes near-Earth objects by designation and links each close
// approach to its NEO. Collections keep their input order; queries iterate
// approaches in that order.
type Database struct {
	neos       []*neo.NearEarthObject
	approaches []*neo.CloseApproach

	byDesignation map[string]*neo.NearEarthObject

	// placeholders holds stand-in NEOs for approaches whose designation is
	// absent from the NEO collection. Stand-ins carry only the designation
	// (no name, NaN diameter, not hazardous) and are not entered into the
	// lookup index, so lookups still report the designation as absent.
	placeholders map[string]*neo.NearEarthObject
}

// New builds a database from the loaded collections. On a duplicate
// designation the first occurrence wins; the loader is expected not to
// produce duplicates. Every approach gets a non-nil NEO reference: either
// the matching object, into whose Approaches it is appended in input order,
// or a shared placeholder for its designation.
func New(neos []*neo.NearEarthObject, approaches []*neo.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*neo.NearEarthObject, len(neos)),
		placeholders:  make(map[string]*neo.NearEarthObject),
	}

	for _, n := range neos {
		if _, ok := db.byDesignation[n.Designation]; ok {
			continue // first wins
		}
		db.byDesignation[n.Designation] = n
	}

	for _, ca := range approaches {
		n, ok := db.byDesignation[ca.Designation]
		if !ok {
			n = db.placeholder(ca.Designation)
		} else {
			n.Approaches = append(n.Approaches, ca)
		}
		ca.NEO = n
	}

	return db
}

// NEOByDesignation returns the NEO with the given designation, if one was
// present in the input collection. Constant time.
func (db *Database) NEOByDesignation(designation string) (*neo.NearEarthObject, bool) {
	n, ok := db.byDesignation[designation]
	return n, ok
}

// NEOByName returns the first NEO (in input order) whose name equals name.
// Unnamed NEOs never match, so the empty string finds nothing.
func (db *Database) NEOByName(name string) (*neo.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	for _, n := range db.neos {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// NEOCount returns the number of loaded NEOs.
func (db *Database) NEOCount() int { return len(db.neos) }

// ApproachCount returns the number of loaded close approaches.
func (db *Database) ApproachCount() int { return len(db.approaches) }

// Query returns a lazy sequence of the close approaches matching every
// filter, in input (chronological) order, truncated to at most limit items
// when limit is positive. Evaluation is interleaved with consumption: a
// caller that stops ranging early stops filter evaluation with it. The
// sequence is single-use; call Query again to restart.
func (db *Database) Query(filters []filter.Filter, limit int) iter.Seq[*neo.CloseApproach] {
	matched := func(yield func(*neo.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !filter.MatchesAll(filters, ca) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
	return filter.Limit(matched, limit)
}

func (db *Database) placeholder(designation string) *neo.NearEarthObject {
	if n, ok := db.placeholders[designation]; ok {
		return n
	}
	n := &neo.NearEarthObject{Designation: designation, Diameter: math.NaN()}
	db.placeholders[designation] = n
	return n
}
