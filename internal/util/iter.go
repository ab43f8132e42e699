package util

import "iter"

func IterFirst[V any](seq iter.Seq[V]) (V, bool) {
	for v := range seq {
		return v, true
	}
	var v V
	return v, false
}

func IterFilter[V any](seq iter.Seq[V], fn func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if fn(v) && !yield(v) {
				return
			}
		}
	}
}
