// Package port parses and validates the signal declarations that describe
// the interface between the simulator and an externally executed process.
//
// A declaration has the form
//
//	name[:width[:type]]
//
// where width is a numeric literal (see package numlit) and type is one of
// std_logic, std_logic_vector or unsigned. The resulting Port is immutable
// and is queried by template consumers through the narrow Attributes
// interface.
package port
