package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFASTA parses FASTA records from r.
//
// Residues are uppercased and whitespace-stripped; each record is
// validated for the given kind before being returned.
func ReadFASTA(r io.Reader, kind Kind) ([]*Sequence, error) {
	var (
		seqs []*Sequence
		id   string
		desc string
		body strings.Builder
	)

	flush := func() error {
		if id == "" && body.Len() == 0 {
			return nil
		}
		seq, err := WithMetadata(id, body.String(), desc, kind)
		if err != nil {
			return err
		}
		seqs = append(seqs, seq)
		body.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			header := strings.TrimPrefix(line, ">")
			if sp := strings.IndexAny(header, " \t"); sp >= 0 {
				id, desc = header[:sp], strings.TrimSpace(header[sp+1:])
			} else {
				id, desc = header, ""
			}
			continue
		}
		if id == "" {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("fasta: no records found")
	}
	return seqs, nil
}

// ReadFASTAFile parses FASTA records from a file path ("-" reads stdin).
func ReadFASTAFile(path string, kind Kind) ([]*Sequence, error) {
	if path == "-" {
		return ReadFASTA(os.Stdin, kind)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFASTA(f, kind)
}
