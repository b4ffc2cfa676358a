package filter

import "iter"

// Limit caps a sequence at n items without materializing it. A bound of zero
// or less is a passthrough: the sequence is returned unchanged. The upstream
// sequence is never advanced past what the consumer pulls, so an expensive
// producer stops working as soon as the cap (or the consumer) stops the
// iteration.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}
