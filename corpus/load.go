package corpus

import (
	"bufio"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/fluhus/rolelda/model"
	"github.com/pkg/errors"
)

// LoadResult is the output of Load: the books built from the record
// stream, in first-seen order, and the initial topic-word matrix
// built from their random initial assignments.
type LoadResult struct {
	Books []*model.Book
	TW    *model.TopicWordMatrix
}

// Load parses the `charID label word1 word2 ...` record stream (spec.md
// §6), keeping only tokens present in vocab, and builds the Book/
// Character ownership tree (spec.md §4.5):
//
//   - a record with fewer than 3 fields, or a characterID without "|",
//     is skipped (ErrMalformedRecord, logged at Debug and continued);
//   - a character with more than 32767 in-vocabulary tokens is skipped
//     with a Warn log (CharacterTooLong);
//   - a character with fewer than 10 in-vocabulary tokens is skipped
//     silently (CharacterTooShort);
//   - surviving characters get independent uniform-random initial
//     topic assignments in [0,K) via rng, with ThemeCounts/RoleCounts/TW
//     incremented to match (spec.md §3 Lifecycle).
//
// Reading stops after maxLines records.
func Load(r io.Reader, vocab *Vocabulary, hp model.Hyperparameters, maxLines int, rng *rand.Rand, logger *slog.Logger) (*LoadResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	k := hp.K()
	tw := model.NewTopicWordMatrix(len(vocab.Words), k)

	bookIndex := make(map[string]*model.Book)
	var books []*model.Book

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := 0
	for scanner.Scan() {
		lines++
		if lines > maxLines {
			break
		}

		charID, bookName, wordIDs, err := parseRecord(scanner.Text(), vocab)
		if err != nil {
			logger.Debug("skipping malformed record", "line", lines, "error", err)
			continue
		}

		if len(wordIDs) > 32767 {
			logger.Warn("skipping character: too many in-vocabulary tokens", "characterID", charID, "tokens", len(wordIDs))
			continue
		}
		if len(wordIDs) < 10 {
			continue
		}

		book, ok := bookIndex[bookName]
		if !ok {
			book = model.NewBook(bookName, hp.T)
			bookIndex[bookName] = book
			books = append(books, book)
		}

		book.AddCharacter(charID, wordIDs, hp.R)
		charIdx := len(book.Characters) - 1
		ch := &book.Characters[charIdx]

		for i := range ch.Words {
			z := int16(rng.Intn(k))
			ch.Z[i] = z
			model.IncrementTopic(book, charIdx, z, hp.T)
			tw.Increment(int(ch.Words[i]), int(z))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &LoadResult{Books: books, TW: tw}, nil
}

func inVocabIDs(words []string, vocab *Vocabulary) []int32 {
	ids := make([]int32, 0, len(words))
	for _, w := range words {
		if id, ok := vocab.Index[w]; ok {
			ids = append(ids, int32(id))
		}
	}
	return ids
}

// parseRecord splits one line into its characterID, book name, and
// in-vocabulary word ids, returning ErrMalformedRecord if the line has
// fewer than 3 whitespace fields or its characterID lacks "|".
func parseRecord(line string, vocab *Vocabulary) (charID, bookName string, wordIDs []int32, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", "", nil, errors.Wrap(ErrMalformedRecord, "too few fields")
	}
	charID = fields[0]
	barIdx := strings.Index(charID, "|")
	if barIdx < 0 {
		return "", "", nil, errors.Wrapf(ErrMalformedRecord, "characterID %q has no '|'", charID)
	}
	// fields[1] is the label — accepted and ignored, per spec.md §6.
	return charID, charID[:barIdx], inVocabIDs(fields[2:], vocab), nil
}
