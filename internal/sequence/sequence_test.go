package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid DNA", func(t *testing.T) {
		seq, err := New("s1", "acgtACGT")
		require.NoError(t, err)
		assert.Equal(t, "ACGTACGT", seq.Residues)
		assert.Equal(t, 8, seq.Len())
		assert.Equal(t, Nucleotide, seq.Kind)
	})

	t.Run("whitespace stripped", func(t *testing.T) {
		seq, err := New("s1", "ACGT ACGT\nACGT")
		require.NoError(t, err)
		assert.Equal(t, "ACGTACGTACGT", seq.Residues)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := New("s1", "")
		require.Error(t, err)
		var empty *EmptySequenceError
		assert.ErrorAs(t, err, &empty)
	})

	t.Run("invalid base", func(t *testing.T) {
		_, err := New("s1", "ACGQ")
		require.Error(t, err)
		var invalid *InvalidResidueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 3, invalid.Position)
		assert.Equal(t, 'Q', invalid.Found)
	})
}

func TestNewProtein(t *testing.T) {
	t.Run("valid protein", func(t *testing.T) {
		seq, err := NewProtein("p1", "MKVLAW")
		require.NoError(t, err)
		assert.Equal(t, Protein, seq.Kind)
	})

	t.Run("Q valid for protein", func(t *testing.T) {
		_, err := NewProtein("p1", "QQQQ")
		assert.NoError(t, err)
	})

	t.Run("invalid residue", func(t *testing.T) {
		_, err := NewProtein("p1", "MKVJ")
		require.Error(t, err)
	})
}

func TestAmbiguous(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		kind  Kind
		count int
	}{
		{"no ambiguous", "ACGT", Nucleotide, 0},
		{"two N", "ANGNT", Nucleotide, 2},
		{"protein X", "MXKX", Protein, 2},
		{"N is a residue for protein", "MNKN", Protein, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := WithMetadata("s", tt.seq, "", tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.count, seq.CountAmbiguous())
			assert.Equal(t, tt.count > 0, seq.HasAmbiguous())
		})
	}
}

func TestToFASTA(t *testing.T) {
	seq, err := WithMetadata("tax1", strings.Repeat("ACGT", 25), "sample taxon", Nucleotide)
	require.NoError(t, err)

	fasta := seq.ToFASTA()
	lines := strings.Split(strings.TrimSpace(fasta), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ">tax1 sample taxon", lines[0])
	assert.Len(t, lines[1], 80)
	assert.Len(t, lines[2], 20)
}

func TestReadFASTA(t *testing.T) {
	t.Run("two records", func(t *testing.T) {
		input := ">a first taxon\nACGT\nACGT\n>b\nTTTT\n"
		seqs, err := ReadFASTA(strings.NewReader(input), Nucleotide)
		require.NoError(t, err)
		require.Len(t, seqs, 2)
		assert.Equal(t, "a", seqs[0].ID)
		assert.Equal(t, "first taxon", seqs[0].Description)
		assert.Equal(t, "ACGTACGT", seqs[0].Residues)
		assert.Equal(t, "b", seqs[1].ID)
		assert.Equal(t, "TTTT", seqs[1].Residues)
	})

	t.Run("lowercase normalized", func(t *testing.T) {
		seqs, err := ReadFASTA(strings.NewReader(">a\nacgt\n"), Nucleotide)
		require.NoError(t, err)
		assert.Equal(t, "ACGT", seqs[0].Residues)
	})

	t.Run("data before header", func(t *testing.T) {
		_, err := ReadFASTA(strings.NewReader("ACGT\n"), Nucleotide)
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadFASTA(strings.NewReader(""), Nucleotide)
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		seq, err := WithMetadata("x", "ACGTACGT", "desc", Nucleotide)
		require.NoError(t, err)

		parsed, err := ReadFASTA(strings.NewReader(seq.ToFASTA()), Nucleotide)
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		assert.True(t, seq.Equal(parsed[0]))
		assert.Equal(t, seq.ID, parsed[0].ID)
	})
}
