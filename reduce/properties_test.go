package reduce_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/katalvlaran/rref/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ratGrid is an independent big.Rat view of a snapshot.
type ratGrid [][]*big.Rat

func toGrid(m *matrix.Dense) ratGrid {
	rows := m.ToRows()
	g := make(ratGrid, len(rows))
	for i, row := range rows {
		g[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			g[i][j] = big.NewRat(v.Num(), v.Den())
		}
	}

	return g
}

func toBig(v rational.Rational) *big.Rat { return big.NewRat(v.Num(), v.Den()) }

func (g ratGrid) clone() ratGrid {
	out := make(ratGrid, len(g))
	for i, row := range g {
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = new(big.Rat).Set(v)
		}
	}

	return out
}

func (g ratGrid) equal(o ratGrid) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(o[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j].Cmp(o[i][j]) != 0 {
				return false
			}
		}
	}

	return true
}

// apply replays one step on g using only its metadata.
func (g ratGrid) apply(s reduce.Step) ratGrid {
	out := g.clone()
	switch s.Op {
	case reduce.OpSwap:
		out[s.Rows[0]], out[s.Rows[1]] = out[s.Rows[1]], out[s.Rows[0]]
	case reduce.OpScale:
		f := toBig(s.Factor)
		for j := range out[s.Rows[0]] {
			out[s.Rows[0]][j].Mul(out[s.Rows[0]][j], f)
		}
	case reduce.OpEliminate:
		f := toBig(s.Factor)
		dst, src := s.Rows[0], s.Rows[1]
		tmp := new(big.Rat)
		for j := range out[dst] {
			tmp.Mul(f, out[src][j])
			out[dst][j].Sub(out[dst][j], tmp)
		}
	}

	return out
}

// rank computes rank by forward elimination over big.Rat.
func rank(g ratGrid) int {
	a := g.clone()
	r := 0
	for col := 0; len(a) > 0 && col < len(a[0]) && r < len(a); col++ {
		p := -1
		for i := r; i < len(a); i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[r], a[p] = a[p], a[r]
		for i := r + 1; i < len(a); i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[i][col], a[r][col])
			tmp := new(big.Rat)
			for j := col; j < len(a[0]); j++ {
				tmp.Mul(f, a[r][j])
				a[i][j].Sub(a[i][j], tmp)
			}
		}
		r++
	}

	return r
}

// randomMatrix draws small integers and fractions with a fixed seed;
// about a third of the entries are zero to exercise swaps and free columns.
func randomMatrix(t *testing.T, rng *rand.Rand) *matrix.Dense {
	t.Helper()
	rows, cols := 1+rng.Intn(5), 1+rng.Intn(6)
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Intn(3) == 0 {
				continue
			}
			v, err := rational.FromPair(int64(rng.Intn(19)-9), int64(1+rng.Intn(4)))
			require.NoError(t, err)
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

const propertyTrials = 300

// TestProperty_ExactReplay: every snapshot equals an independent big.Rat
// replay of the previous snapshot under the recorded operation.
func TestProperty_ExactReplay(t *testing.T) {
	rng := rand.New(rand.NewSource(20240229))
	for trial := 0; trial < propertyTrials; trial++ {
		in := randomMatrix(t, rng)
		steps := mustReduce(t, in)

		prev := toGrid(in)
		for k, s := range steps {
			want := prev.apply(s)
			require.True(t, want.equal(toGrid(s.Matrix)),
				"trial %d step %d (%s) diverged\ninput:\n%v", trial, k, s.Label, in)
			prev = want
		}
	}
}

// TestProperty_Canonical: the final snapshot satisfies the RREF definition.
func TestProperty_Canonical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < propertyTrials; trial++ {
		in := randomMatrix(t, rng)
		final := reduce.Final(mustReduce(t, in))
		rows := final.ToRows()

		lastCol, seenZeroRow := -1, false
		for i := range rows {
			lead := final.LeadingColumn(i)
			if lead < 0 {
				seenZeroRow = true
				continue
			}
			require.False(t, seenZeroRow, "nonzero row below a zero row")
			require.Greater(t, lead, lastCol, "pivot columns must increase")
			lastCol = lead
			require.True(t, rows[i][lead].EqualsInt(1), "leading entry must be 1")
			for k := range rows {
				if k != i {
					require.True(t, rows[k][lead].IsZero(), "pivot column must be clear")
				}
			}
		}
	}
}

// TestProperty_RowEquivalence: rank(A) == rank(R) == rank([A; R]).
func TestProperty_RowEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < propertyTrials; trial++ {
		in := randomMatrix(t, rng)
		final := reduce.Final(mustReduce(t, in))

		a, r := toGrid(in), toGrid(final)
		stacked := append(a.clone(), r.clone()...)
		ra := rank(a)
		assert.Equal(t, ra, rank(r))
		assert.Equal(t, ra, rank(stacked), "row spaces differ")
		assert.Equal(t, ra, reduce.Analyze(final, false).Rank)
	}
}

// TestProperty_Idempotent: reducing an RREF yields only bookends.
func TestProperty_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < propertyTrials; trial++ {
		final := reduce.Final(mustReduce(t, randomMatrix(t, rng)))
		again := mustReduce(t, final)

		require.Len(t, again, 3)
		require.Empty(t, ops(again))
		require.True(t, matrix.Equal(final, reduce.Final(again)))
	}
}
