package tracker

import "sync"

// syncMap is a typed view over sync.Map.
type syncMap[K comparable, V any] struct {
	m sync.Map
}

func (s *syncMap[K, V]) Load(key K) (V, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (s *syncMap[K, V]) LoadOrStore(key K, value V) (V, bool) {
	v, loaded := s.m.LoadOrStore(key, value)
	return v.(V), loaded
}

func (s *syncMap[K, V]) CompareAndSwap(key K, old, next V) bool {
	return s.m.CompareAndSwap(key, old, next)
}

func (s *syncMap[K, V]) Delete(key K) {
	s.m.Delete(key)
}
