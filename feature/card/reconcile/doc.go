// Package reconcile computes the mutation plan that turns a deck's persisted
// card set into a client-supplied desired list.
//
// Planning is split from application: BuildPlan and PlanFacets are pure
// functions over in-memory snapshots, so the diff rules are testable without
// a database, while the card store applies a finished plan as grouped writes.
//
// # Card plan
//
// A desired card whose id is unknown is a creation; a desired card whose id
// exists but whose (ordinal, front, back) content differs is an update; a
// persisted card missing from the desired list is a deletion. Timestamps are
// never part of the comparison.
//
// # Facet plan
//
// Facets have no identity of their own. Within a surviving or created card,
// each side's facet map is diffed tag-by-tag against the persisted rows:
// shared tags are overwritten blindly, new tags inserted, abandoned tags
// deleted. The plan batches all cards of a replace call so the store can
// execute one grouped insert, one grouped overwrite and one grouped delete.
package reconcile
