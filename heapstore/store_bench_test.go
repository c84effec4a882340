package heapstore_test

import (
	"math/rand/v2"
	"testing"

	"github.com/hrissan/pqueue/heapstore"
)

func prepareStore(size int) ([]int, *heapstore.Store[int, int]) {
	priorities := make([]int, size)
	for i := range priorities {
		priorities[i] = i
	}
	return priorities, heapstore.New[int](func(a, b int) bool { return a < b }, size)
}

func BenchmarkInsertAsc(b *testing.B) {
	b.ReportAllocs()
	priorities, s := prepareStore(b.N)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.Insert(n, priorities[n])
	}
}

func BenchmarkInsertDesc(b *testing.B) {
	b.ReportAllocs()
	priorities, s := prepareStore(b.N)
	b.ResetTimer()
	for n := b.N - 1; n >= 0; n-- {
		s.Insert(n, priorities[n])
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	b.ReportAllocs()
	priorities, s := prepareStore(b.N)
	rand.Shuffle(len(priorities), func(i, j int) {
		priorities[i], priorities[j] = priorities[j], priorities[i]
	})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.Insert(n, priorities[n])
	}
}

func BenchmarkExtractMin(b *testing.B) {
	b.ReportAllocs()
	priorities, s := prepareStore(b.N)
	rand.Shuffle(len(priorities), func(i, j int) {
		priorities[i], priorities[j] = priorities[j], priorities[i]
	})
	for n := 0; n < b.N; n++ {
		s.Insert(n, priorities[n])
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, _, err := s.ExtractMin(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBulkLoad(b *testing.B) {
	b.ReportAllocs()
	priorities, _ := prepareStore(b.N)
	rand.Shuffle(len(priorities), func(i, j int) {
		priorities[i], priorities[j] = priorities[j], priorities[i]
	})
	elements := make([]int, b.N)
	b.ResetTimer()
	s := heapstore.New[int](func(a, b int) bool { return a < b }, b.N)
	s.BulkLoad(elements, priorities)
}

func BenchmarkReplaceMin(b *testing.B) {
	b.ReportAllocs()
	_, s := prepareStore(1024)
	for n := 0; n < 1024; n++ {
		s.Insert(n, n)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.ReplaceMin(n, n+1024)
	}
}
