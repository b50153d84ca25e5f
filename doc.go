// Package unbusy contains the shared domain model of the Unbusy
// class-scheduling plugin for RUET students: roll numbers and the views
// derived from them, the five-day academic cycle, weekly class routines,
// notices, and the holiday calendar, together with the validation rules that
// give those values meaning.
//
// The package is a leaf dependency. It holds no state, starts no goroutines
// and performs no I/O beyond the embedded course table; persistence,
// transport and notice delivery belong to its consumers. All values are
// immutable after construction and safe to share between goroutines.
//
// Every type round-trips through both YAML and JSON using the wire contract
// of the plugin's data files: lowerCamelCase field names, externally
// tagged sum types, and decode-time defaults for optional routine fields.
package unbusy
