package idset_test

import (
	"testing"

	"github.com/katalvlaran/hypergraph/idset"
	"github.com/stretchr/testify/require"
)

type item struct {
	id uint64
}

func (i *item) ID() uint64 { return i.id }

func TestSet_AddContainsRemove(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()

	a := &item{id: 1}
	b := &item{id: 2}

	ok, err := s.Add(a)
	r.NoError(err)
	r.True(ok)

	ok, err = s.Add(a)
	r.NoError(err)
	r.False(ok, "re-adding the same element is a no-op")

	r.True(s.Contains(a))
	r.False(s.Contains(b))
	r.Equal(1, s.Len())

	r.True(s.Remove(a))
	r.False(s.Remove(a), "removing twice returns false the second time")
	r.False(s.Contains(a))
	r.Equal(0, s.Len())
}

func TestSet_NilElementRejected(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	_, err := s.Add(nil)
	r.ErrorIs(err, idset.ErrNilElement)
}

func TestSet_ResizePreservesMembership(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	const n = 500
	items := make([]*item, n)
	for i := 0; i < n; i++ {
		items[i] = &item{id: uint64(i)}
		ok, err := s.Add(items[i])
		r.NoError(err)
		r.True(ok)
	}
	r.Equal(n, s.Len())
	for _, it := range items {
		r.True(s.Contains(it))
	}
}

func TestSet_TombstonesDoNotBreakProbing(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	const n = 100
	items := make([]*item, n)
	for i := 0; i < n; i++ {
		items[i] = &item{id: uint64(i * 8)} // collide heavily mod small capacities
		_, err := s.Add(items[i])
		r.NoError(err)
	}
	// remove every other element, leaving tombstones interleaved with live entries
	for i := 0; i < n; i += 2 {
		r.True(s.Remove(items[i]))
	}
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			r.False(s.Contains(items[i]))
		} else {
			r.True(s.Contains(items[i]))
		}
	}
}

func TestIterator_YieldsAllLiveElements(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	want := map[uint64]bool{}
	for i := 0; i < 20; i++ {
		it := &item{id: uint64(i)}
		_, _ = s.Add(it)
		want[it.id] = true
	}
	it := s.Iterator()
	got := map[uint64]bool{}
	for it.Next() {
		got[it.Value().ID()] = true
	}
	r.NoError(it.Err())
	r.Equal(want, got)
}

func TestIterator_FailsFastOnMutation(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	_, _ = s.Add(&item{id: 1})
	_, _ = s.Add(&item{id: 2})

	it := s.Iterator()
	r.True(it.Next())

	_, _ = s.Add(&item{id: 3})

	r.False(it.Next())
	r.ErrorIs(it.Err(), idset.ErrConcurrentModification)
}

func TestSet_Clear(t *testing.T) {
	r := require.New(t)
	s := idset.New[*item]()
	_, _ = s.Add(&item{id: 1})
	_, _ = s.Add(&item{id: 2})
	s.Clear()
	r.Equal(0, s.Len())
	r.Empty(s.Slice())
}
