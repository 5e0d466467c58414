package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyloflow/phyloflow-go/internal/scoring"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

func mustSeq(t *testing.T, id, residues string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New(id, residues)
	require.NoError(t, err)
	return seq
}

func mustProtein(t *testing.T, id, residues string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.NewProtein(id, residues)
	require.NoError(t, err)
	return seq
}

func TestAlignInvalidInput(t *testing.T) {
	seq := mustSeq(t, "a", "ACGT")

	_, err := Align(nil, seq, nil, Global)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Align(seq, nil, nil, Local)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGlobalSelfAlignment(t *testing.T) {
	for _, residues := range []string{"A", "ACGT", "ACGTACGTAC"} {
		t.Run(residues, func(t *testing.T) {
			seq := mustSeq(t, "s", residues)
			a, err := Align(seq, seq, nil, Global)
			require.NoError(t, err)

			assert.Equal(t, 100.0, a.IdentityPct)
			assert.Equal(t, len(residues), a.Length)
			assert.Equal(t, 0, a.Gaps)
			assert.Equal(t, 2*len(residues), a.Score)
		})
	}
}

func TestGlobalAlignment(t *testing.T) {
	t.Run("one mismatch", func(t *testing.T) {
		a, err := Align(mustSeq(t, "A", "ACGTACGT"), mustSeq(t, "B", "ACGTACGA"), nil, Global)
		require.NoError(t, err)

		assert.Equal(t, 8, a.Length)
		assert.Equal(t, 87.5, a.IdentityPct)
		assert.Equal(t, 0.0, a.GapPct)
		assert.Equal(t, 13, a.Score) // 7 matches - 1 mismatch
	})

	t.Run("gap opened", func(t *testing.T) {
		a, err := Align(mustSeq(t, "A", "ACGTACGT"), mustSeq(t, "B", "ACGACGT"), nil, Global)
		require.NoError(t, err)

		assert.Equal(t, 8, a.Length)
		assert.Equal(t, 1, a.Gaps)
		assert.Equal(t, strings.ReplaceAll(a.AlignedSeq1, "-", ""), "ACGTACGT")
		assert.Equal(t, strings.ReplaceAll(a.AlignedSeq2, "-", ""), "ACGACGT")
	})

	t.Run("score symmetric", func(t *testing.T) {
		s1, s2 := mustSeq(t, "A", "ACGTTGCA"), mustSeq(t, "B", "AGGTTACA")
		a12, err := Align(s1, s2, nil, Global)
		require.NoError(t, err)
		a21, err := Align(s2, s1, nil, Global)
		require.NoError(t, err)
		assert.Equal(t, a12.Score, a21.Score)
	})

	t.Run("aligned lengths equal", func(t *testing.T) {
		a, err := Align(mustSeq(t, "A", "ACGT"), mustSeq(t, "B", "ACGTACGTACGT"), nil, Global)
		require.NoError(t, err)
		assert.Len(t, a.AlignedSeq2, a.Length)
		assert.Len(t, a.AlignedSeq1, a.Length)
	})
}

func TestLocalAlignment(t *testing.T) {
	t.Run("score never negative", func(t *testing.T) {
		a, err := Align(mustSeq(t, "A", "AAAA"), mustSeq(t, "B", "TTTT"), nil, Local)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a.Score, 0)
		assert.Equal(t, 0, a.Score)
	})

	t.Run("finds embedded match", func(t *testing.T) {
		a, err := Align(mustSeq(t, "A", "TTTACGTAAA"), mustSeq(t, "B", "CCACGTCC"), nil, Local)
		require.NoError(t, err)
		assert.Equal(t, "ACGT", a.AlignedSeq1)
		assert.Equal(t, "ACGT", a.AlignedSeq2)
		assert.Equal(t, 8, a.Score)
		assert.Equal(t, 100.0, a.IdentityPct)
	})

	t.Run("identical", func(t *testing.T) {
		seq := mustSeq(t, "s", "ACGTACGT")
		a, err := Align(seq, seq, nil, Local)
		require.NoError(t, err)
		assert.Equal(t, 100.0, a.IdentityPct)
		assert.Equal(t, 16, a.Score)
	})
}

func TestProteinAlignment(t *testing.T) {
	scheme := scoring.DefaultProtein()

	t.Run("self alignment", func(t *testing.T) {
		seq := mustProtein(t, "p", "MKVLAW")
		a, err := Align(seq, seq, scheme, Global)
		require.NoError(t, err)
		assert.Equal(t, 100.0, a.IdentityPct)
		assert.Equal(t, 100.0, a.SimilarityPct)
	})

	t.Run("conservative substitution counts as similarity", func(t *testing.T) {
		// L/I scores +2 in BLOSUM62: similar but not identical
		a, err := Align(mustProtein(t, "p1", "MKL"), mustProtein(t, "p2", "MKI"), scheme, Global)
		require.NoError(t, err)
		assert.Equal(t, 2, a.Identities)
		assert.Equal(t, 3, a.Similarities)
		assert.InDelta(t, 66.67, a.IdentityPct, 0.01)
		assert.Equal(t, 100.0, a.SimilarityPct)
	})
}

func TestAlignmentFormat(t *testing.T) {
	a, err := Align(mustSeq(t, "A", "ACGT"), mustSeq(t, "B", "ACCT"), nil, Global)
	require.NoError(t, err)

	out := a.Format()
	assert.Contains(t, out, "ACGT")
	assert.Contains(t, out, "|")
	assert.Contains(t, out, "Score:")
}
