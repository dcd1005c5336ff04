// Package corpus implements the input collaborators spec.md scopes
// out of the core: vocabulary derivation and record parsing. Grounded
// on original_source/infer_two_levels.py's get_vocab and
// load_characters for exact semantics (vocab counted once per
// character, bookname = charid.split("|")[0], the 10/32767 skip
// thresholds) — the core packages (model, sampler, sweep,
// coordinator, audit) never import this one.
package corpus

import "errors"

// ErrMalformedRecord marks a line with fewer than 3 whitespace fields
// or a characterID lacking "|" (spec.md §7 InputMalformed). Callers
// skip the record and continue; this is returned from per-record
// helpers mainly so tests can assert on it, not to abort a load.
var ErrMalformedRecord = errors.New("corpus: malformed record")
