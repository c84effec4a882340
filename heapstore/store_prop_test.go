// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package heapstore_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hrissan/pqueue/heapstore"
)

func TestSortProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("repeated ExtractMin yields the sorted input", prop.ForAll(
		func(priorities []int) bool {
			s := heapstore.New[struct{}](intLess, 0)
			for _, p := range priorities {
				s.Insert(struct{}{}, p)
			}
			var got []int
			for s.Len() != 0 {
				_, p, err := s.ExtractMin()
				if err != nil {
					return false
				}
				got = append(got, p)
			}
			want := slices.Clone(priorities)
			slices.Sort(want)
			return slices.Equal(got, want)
		},
		gen.SliceOf(gen.Int()), // includes empty and single-element slices
	))

	properties.Property("BulkLoad and Insert agree on extraction order", prop.ForAll(
		func(priorities []int) bool {
			elements := make([]struct{}, len(priorities))
			bulk := heapstore.New[struct{}](intLess, 0)
			bulk.BulkLoad(elements, priorities)
			if bulk.WellFormed() != nil {
				return false
			}
			oneByOne := heapstore.New[struct{}](intLess, 0)
			for _, p := range priorities {
				oneByOne.Insert(struct{}{}, p)
			}
			for bulk.Len() != 0 {
				_, a, errA := bulk.ExtractMin()
				_, b, errB := oneByOne.ExtractMin()
				if errA != nil || errB != nil || a != b {
					return false
				}
			}
			return oneByOne.Len() == 0
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("heap property holds after every insert", prop.ForAll(
		func(priorities []int) bool {
			s := heapstore.New[struct{}](intLess, 0)
			for _, p := range priorities {
				s.Insert(struct{}{}, p)
				if s.WellFormed() != nil {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
