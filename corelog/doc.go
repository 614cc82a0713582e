/*
Package corelog provides the simulation core's append-only log sink: a thin,
mutex-guarded wrapper over the standard library's *log.Logger, tagged with a
per-run correlation ID so interleaved log lines from a long-running process
can be grouped back together.

There is no ecosystem logging library anywhere in the retrieval pack this
module was built from (no zerolog, logrus, or zap import appears in any
example), so this package follows the teacher's own convention of reaching
for the standard library directly for this concern, rather than introducing
a dependency none of the source material uses.
*/
package corelog
