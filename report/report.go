// Package report prints the per-topic top-word summary of spec.md §6
// Outputs: for each topic, its 12 highest-count words and the topic's
// total token count. Grounded on
// original_source/infer_two_levels.py:print_topicwords for the exact
// semantics (sort by count descending, top-12, trailing column sum)
// and on fondoger-gostuff/nlp/lda.go's dist.top/distSorter for the Go
// sorting idiom, generalized here to slices.SortFunc.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fluhus/rolelda/model"
	"github.com/mattn/go-isatty"
	"golang.org/x/exp/slices"
)

// topWordsPerTopic is spec.md's fixed "top 12" (original_source's
// print_topicwords n=12).
const topWordsPerTopic = 12

// wordCount pairs a vocabulary word with its count in one topic
// column, for sorting.
type wordCount struct {
	word  string
	count int64
}

// Printer writes the topic-word report to an underlying writer. A
// Printer satisfies coordinator.Reporter.
type Printer struct {
	W          io.Writer
	Vocabulary []string
	isTerminal bool
}

// NewPrinter builds a Printer over w, auto-detecting whether w is a
// terminal (via go-isatty) to decide whether to print a blank
// separator line between reports, matching the teacher's interactive
// CLI texture.
func NewPrinter(w io.Writer, vocabulary []string) *Printer {
	tty := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	return &Printer{W: w, Vocabulary: vocabulary, isTerminal: tty}
}

// Report implements coordinator.Reporter: it prints one line per
// topic, "K: word1 | word2 | ... | word12   count", themes first
// (0..T-1) then roles (T..K-1), matching
// original_source/infer_two_levels.py's iteration order.
func (p *Printer) Report(iteration int, tw *model.TopicWordMatrix) {
	fmt.Fprintf(p.W, "iteration %s\n", humanize.Comma(int64(iteration)))
	for k := 0; k < tw.K; k++ {
		fmt.Fprintln(p.W, p.topicLine(k, tw))
	}
	if p.isTerminal {
		fmt.Fprintln(p.W)
	}
}

func (p *Printer) topicLine(k int, tw *model.TopicWordMatrix) string {
	counts := make([]wordCount, 0, len(p.Vocabulary))
	for w, word := range p.Vocabulary {
		counts = append(counts, wordCount{word: word, count: tw.TW[w][k]})
	}
	slices.SortFunc(counts, func(a, b wordCount) int {
		if a.count != b.count {
			if a.count > b.count {
				return -1
			}
			return 1
		}
		return strings.Compare(b.word, a.word)
	})

	n := topWordsPerTopic
	if n > len(counts) {
		n = len(counts)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].word
	}

	return fmt.Sprintf("%d: %s   %s", k, strings.Join(top, " | "), humanize.Comma(tw.ColumnSum(k)))
}
