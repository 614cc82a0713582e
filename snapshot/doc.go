/*
Package snapshot serializes one tick's state to the host boundary, per
§4.H and §6. The wire format is line-delimited JSON: one compact object per
tick, newline-terminated, with the contractual field names §6 specifies
verbatim (t, reward, penalty, ...). No example in the retrieval pack uses a
dedicated line-protocol or schema library for this kind of record, so this
package follows the teacher's default of reaching for encoding/json
directly — the spec itself calls the exact syntax "a boundary detail",
which a hand-rolled struct tag mapping is enough to satisfy.

Encoder also keeps a small ring buffer of the most recently emitted
records, so a fatal invariant violation can dump recent history to the log
sink without having to re-derive it from already-mutated network state.
*/
package snapshot
