// Package services provides stateless domain services for the command
// interpreter: intent classification over an ordered rule table, deterministic
// field extraction (tracking ids, assignees, status keywords, pickup times),
// and the add/remove item-list sub-parser.
//
// Everything here is pure text processing. Model-assisted extraction, which
// needs an outbound port, lives in the application layer.
package services
