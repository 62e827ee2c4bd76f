package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adaptive-mesh/qotree/sparse"
)

func TestMatrix_AddAndAt(t *testing.T) {
	m := sparse.New(2, 3)
	require.NoError(t, m.Add(0, 0, 1))
	require.NoError(t, m.Add(0, 0, 2)) // duplicate entries accumulate
	require.NoError(t, m.Add(1, 2, -1))

	require.Equal(t, 3.0, m.At(0, 0))
	require.Equal(t, -1.0, m.At(1, 2))
	require.Equal(t, 0.0, m.At(1, 0))

	err := m.Add(5, 0, 1)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
}

func TestMatrix_RowSums(t *testing.T) {
	m := sparse.New(2, 2)
	require.NoError(t, m.Add(0, 0, 1))
	require.NoError(t, m.Add(0, 1, -1))
	require.NoError(t, m.Add(1, 0, 4))

	require.Equal(t, []float64{0, 4}, m.RowSums())
}

func TestMatrix_Scale(t *testing.T) {
	m := sparse.New(2, 2)
	require.NoError(t, m.Add(0, 1, 1))
	require.NoError(t, m.Add(1, 0, -1))

	scaled, err := m.Scale([]float64{2, 3}, []float64{10, 100})
	require.NoError(t, err)
	require.Equal(t, 2*100.0, scaled.At(0, 1))
	require.Equal(t, -3*10.0, scaled.At(1, 0))

	_, err = m.Scale([]float64{1}, nil)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestIdentity(t *testing.T) {
	id := sparse.Identity(3)
	dense := id.ToDense()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				require.Equal(t, 1.0, dense[i][j])
			} else {
				require.Equal(t, 0.0, dense[i][j])
			}
		}
	}
}

func TestPermutation(t *testing.T) {
	p, err := sparse.Permutation([]int{2, 0, 1}, 0)
	require.NoError(t, err)

	dense := p.ToDense()
	require.Equal(t, [][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	}, dense)

	_, err = sparse.Permutation([]int{5}, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
}

// TestPermutation_IsOrthogonal checks that a permutation matrix times its
// transpose is the identity.
func TestPermutation_IsOrthogonal(t *testing.T) {
	p, err := sparse.Permutation([]int{3, 1, 0, 2}, 0)
	require.NoError(t, err)

	pt := p.Transpose()
	for i := 0; i < 4; i++ {
		row := make([]float64, 4)
		for j := 0; j < 4; j++ {
			var dot float64
			for k := 0; k < 4; k++ {
				dot += p.At(i, k) * pt.At(k, j)
			}
			row[j] = dot
		}
		for j := 0; j < 4; j++ {
			if i == j {
				require.Equal(t, 1.0, row[j])
			} else {
				require.Equal(t, 0.0, row[j])
			}
		}
	}
}

func TestMatrix_MulVec(t *testing.T) {
	m := sparse.New(2, 2)
	require.NoError(t, m.Add(0, 0, 1))
	require.NoError(t, m.Add(0, 1, 2))
	require.NoError(t, m.Add(1, 1, 3))

	out, err := m.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, out)

	_, err = m.MulVec([]float64{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
