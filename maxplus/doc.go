// Package maxplus implements the (max, +) semiring used to propagate
// earliest completion times through a dataflow graph.
//
// In max-plus algebra "addition" is max and "multiplication" is ordinary
// addition. The neutral element of max is −∞, which this package calls
// MinusInfinity and which reads as "unrelated": a token whose timestamp is
// −∞ does not constrain anything downstream.
//
// Types:
//
//	Vector – ordered timestamps, one per distinguishable token.
//	Matrix – rows×cols max-plus linear map, entry (i,j) is the delay from
//	         input token j to output token i, MinusInfinity when unrelated.
//
// Numeric policy:
//
//	All comparisons use an absolute tolerance (DefaultEpsilon unless a caller
//	passes its own). MinusInfinity is close only to MinusInfinity, never to a
//	finite value, however negative. Hashing of timestamps goes through
//	Quantize, which maps values that compare equal under the tolerance to the
//	same bucket in all but boundary cases; callers that need exact equality
//	use Quantize for the hash key and Vector.Equal for the final check.
//
// Complexity:
//
//	Vector operations are O(n); Matrix.MulVector is O(r·c); Matrix.Mul is
//	O(r·k·c).
package maxplus
