package xslices

import "iter"

// Split partitions s into at most n contiguous chunks of near-equal length.
// Chunks are never empty, so fewer than n are yielded when len(s) < n.
func Split[Slice ~[]E, E any](s Slice, n int) iter.Seq[Slice] {
	if n < 1 {
		panic("cannot be less than 1")
	}

	return func(yield func(Slice) bool) {
		for start, left := 0, n; start < len(s); left-- {
			size := (len(s) - start + left - 1) / left
			end := start + size

			if !yield(s[start:end:end]) {
				return
			}

			start = end
		}
	}
}
