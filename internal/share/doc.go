// Package share parses share documents and selects the interpolation
// points from them.
//
// A document is a JSON object with a "keys" entry declaring the total
// share count n and threshold k, plus one entry per share whose key is the
// share's x-coordinate and whose value carries the base-encoded y:
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2",  "value": "111" },
//	  ...
//	}
//
// Top-level keys that do not parse as non-negative integers are ignored.
// When more than k shares are present, the k with the smallest
// x-coordinates are used and the rest are never consulted, so an
// inconsistent surplus share goes undetected. Both behaviors are kept
// deliberately; see DESIGN.md.
package share
