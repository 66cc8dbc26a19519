// Package series loads string displacement snapshots recorded by a simulation.
//
// A snapshot file holds one comma-separated line of samples per instant:
//
//	0,0.0012,0.0024,...,0
//	0,0.0013,0.0025,...,0
//
// In paired mode the lines alternate between a displacement snapshot and a
// companion snapshot (usually velocity), so lines 2i and 2i+1 form step i.
//
//   - [Load], [Parse]: read a file into [Data]
//   - [Encode]: write [Data] back in the same format
//   - [TimeSeries.Column]: the samples of one point along the string over time
//   - [Linspace]: the normalized spatial and temporal axes
//
// Loading fails fast with [ErrSyntax], [ErrOddLineCount], [ErrRaggedSnapshot]
// or [ErrEmptyInput]; the returned data is never mutated afterwards.
package series
