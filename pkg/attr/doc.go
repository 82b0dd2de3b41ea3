// Package attr encodes the attribute value grammar conventions recognized
// by OMX store consumers: enum, num, string, size (<num>x<num>), ratio
// (<num>:<num>), range (<lo>-<hi>), and comma-separated lists.
//
// The store treats attribute values as opaque strings and never enforces
// this grammar on the query path; these helpers exist for callers and for
// configuration linting (omxctl validate --grammar).
package attr
