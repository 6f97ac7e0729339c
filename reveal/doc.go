// Package reveal computes scroll positions that make a range or a set of
// selections visible inside a viewport.
//
// The planner is a pure function of the viewport, the request and the line
// geometry supplied by the host. It never mutates scroll state; callers
// apply the returned position. A request that cannot or should not be
// honored is reported as ok=false and must be treated as "do nothing".
package reveal
