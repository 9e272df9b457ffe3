// Package history records processed expressions in a SQLite database.
//
// Every parse-and-simplify run can be appended as a Record: the input, the
// simplified output, tree sizes before and after, the folding policy, and
// timing. Records are queryable with time, source, and limit filters, and a
// Pruner enforces the retention policy (age- and count-based), either on
// demand or on a cron schedule via the Scheduler.
//
// The store uses the pure-Go modernc.org/sqlite driver with WAL mode
// enabled, so concurrent readers do not block the writer.
package history
