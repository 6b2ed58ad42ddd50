// Package formdef loads form definitions from JSON or YAML documents. A
// definition lists the ordered fields of one form together with their kind,
// label, validation hints, initial attributes and post-decoration defaults.
// Text shown to users (titles, labels, help text) is stripped of markup on
// load. The definitions of the question, answer and signup forms ship
// embedded; see EmbeddedFS.
package formdef
