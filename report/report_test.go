package report

import (
	"strings"
	"testing"

	"github.com/fluhus/rolelda/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPrintsOneLinePerTopic(t *testing.T) {
	tw := model.NewTopicWordMatrix(3, 2)
	tw.TW[0][0] = 5
	tw.TW[1][0] = 3
	tw.TW[2][0] = 1
	tw.TW[0][1] = 9
	tw.RecomputeN()

	var sb strings.Builder
	p := NewPrinter(&sb, []string{"alpha", "beta", "gamma"})
	p.Report(0, tw)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3) // "iteration 0" + 2 topics
	assert.Contains(t, lines[1], "alpha | beta | gamma")
	assert.Contains(t, lines[1], "9") // column sum for topic 0
}

func TestReportSortsWordsByCountDescending(t *testing.T) {
	tw := model.NewTopicWordMatrix(4, 1)
	tw.TW[0][0] = 1
	tw.TW[1][0] = 100
	tw.TW[2][0] = 50
	tw.TW[3][0] = 2
	tw.RecomputeN()

	p := NewPrinter(&strings.Builder{}, []string{"low", "high", "mid", "low2"})
	line := p.topicLine(0, tw)
	assert.True(t, strings.Index(line, "high") < strings.Index(line, "mid"))
	assert.True(t, strings.Index(line, "mid") < strings.Index(line, "low2"))
}

func TestReportTruncatesToTwelveWords(t *testing.T) {
	words := make([]string, 20)
	tw := model.NewTopicWordMatrix(20, 1)
	for i := range words {
		words[i] = string(rune('a' + i))
		tw.TW[i][0] = int64(20 - i)
	}
	tw.RecomputeN()

	p := NewPrinter(&strings.Builder{}, words)
	line := p.topicLine(0, tw)
	assert.Equal(t, 12, strings.Count(line, "|")+1)
}
