/*
Package driver owns the outer simulation loop: pacing, pause/reset/speed,
asynchronous command ingestion, and snapshot emission, per §4.G and §5.

Concurrency model: the simulation loop runs on the caller's goroutine and
is the sole owner of the Brain and World it constructs. A second goroutine,
started by ReadCommands, does nothing but parse lines from a CommandSource
and write to Control's atomic fields — the only state shared between the
two goroutines, matching the design notes' "explicit control record" and
the teacher's own pattern of isolating a monitoring goroutine behind a
sync.WaitGroup and only ever mutating state through guarded primitives.
*/
package driver
