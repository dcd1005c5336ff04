package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Vocabulary is the word→index lexicon plus per-character-frequency
// counts, derived by BuildVocabulary (spec.md §6 "Vocabulary
// derivation").
type Vocabulary struct {
	Words  []string       // in descending-count order
	Index  map[string]int // word -> index into Words
	Counts map[string]int // word -> per-character frequency
}

// BuildVocabulary makes one pass over r, counting each distinct word
// at most once per character (record), and keeps the top maxWords by
// that count. Reading stops after maxLines records, so small-scale
// test runs can cap a large input file (spec.md §6).
func BuildVocabulary(r io.Reader, maxWords, maxLines int) (*Vocabulary, error) {
	counts := make(map[string]int)
	seen := make(map[string]bool)
	var order []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := 0
	for scanner.Scan() {
		lines++
		if lines > maxLines {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		perCharSeen := make(map[string]bool, len(fields)-2)
		for _, w := range fields[2:] {
			if perCharSeen[w] {
				continue
			}
			perCharSeen[w] = true
			counts[w]++
			if !seen[w] {
				seen[w] = true
				order = append(order, w)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxWords {
		order = order[:maxWords]
	}

	index := make(map[string]int, len(order))
	for i, w := range order {
		index[w] = i
	}

	return &Vocabulary{Words: order, Index: index, Counts: counts}, nil
}

// WriteTo writes the vocabulary as "word\tcount" lines, one per word,
// in descending-count order — the selectedvocab.txt format of spec.md
// §6.
func (v *Vocabulary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, word := range v.Words {
		written, err := fmt.Fprintf(bw, "%s\t%d\n", word, v.Counts[word])
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
