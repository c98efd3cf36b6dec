package pkg

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), dir)
		_, err = os.Stat(spill.Path())
		require.NoError(t, err)
	})

	t.Run("empty dir uses default", func(t *testing.T) {
		spill, err := NewFileSpill[int]("")
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), DefaultSpillDir())
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		v, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", v)

		v, err = spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", v)

		v, err = spill.Get(2)
		require.Error(t, err)
		require.Equal(t, "", v)
	})

	t.Run("Len tracks appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range visits items in order", func(t *testing.T) {
		spill, err := NewFileSpill[point](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		in := []point{{1, 2}, {3, 4}, {math.Inf(1), -1}}
		require.NoError(t, spill.AppendBatch(in))

		var out []point
		err = spill.Range(func(_ uint64, p point) error {
			out = append(out, p)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("zero fields are not carried over between items", func(t *testing.T) {
		spill, err := NewFileSpill[point](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(point{X: 1, Y: 2}))
		require.NoError(t, spill.Append(point{X: 3}))

		p, err := spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, point{X: 3}, p)
	})

	t.Run("Range propagates callback error", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		wantErr := errors.New("boom")
		calls := 0
		err = spill.Range(func(_ uint64, _ int) error {
			calls++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		require.Equal(t, 1, calls)
	})

	t.Run("Close removes file and is idempotent", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		_, err = os.Stat(spill.Path())
		require.True(t, os.IsNotExist(err))

		require.Error(t, spill.Append(2))
		require.Error(t, spill.Range(func(uint64, int) error { return nil }))
	})
}
