// Package order implements the Order aggregate for the conversational order
// management system.
//
// An Order is created from free-form user text: structured fields are extracted
// upstream (deterministically or via a language-model call) and arrive here as
// Details. The aggregate enforces the invariants that survive that forgiving
// extraction path: a tracking identifier assigned exactly once, a required item
// list, and a quantity of at least 1. The status field is permissive:
// conversational updates may write any status keyword, and no transition graph
// is enforced.
//
// Item list manipulation (AddItems/RemoveItems) lives on the aggregate because
// removal semantics depend on the current item text: removals are
// case-insensitive whole-word deletions followed by comma normalization, and a
// removal that would empty the list is refused to keep the item requirement.
package order
