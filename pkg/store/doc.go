// Package store implements the codec capability registry: an immutable,
// startup-assembled snapshot of service attributes, codec roles with
// preference-ordered node lists, the node-name prefix policy, and the
// provider directory, composed behind a read-only facade.
//
// A process hosts two named instances of this store, "platform" and
// "vendor", differing only in loaded configuration. The store describes and
// locates codec implementations; it never processes media data or buffers.
//
// All invariants (prefix matching, owner referential integrity, duplicate
// rejection) are enforced when an instance is assembled. The query path is
// branch-free with respect to validation and never reorders results: role
// order is configuration order, and node order within a role is the
// configured selection preference.
package store
