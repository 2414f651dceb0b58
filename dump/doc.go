// Package dump renders decoded events for people and scripts.
//
// Every field of every item variant is printed. Three formats are available:
//
//   - FormatText: one "<Variant> <Field>: value" line per field, a blank line between events
//   - FormatYAML: one YAML document per event
//   - FormatJSON: one JSON object per line
//
// Output can be limited to a set of item types, and can include the raw
// event bytes in hex.
package dump
