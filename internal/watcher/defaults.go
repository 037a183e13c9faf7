package watcher

import "time"

const (
	defaultWorkerCount     = 4
	defaultChunkSize       = 100
	defaultFetchLimit      = 5000
	defaultResolveDeadline = time.Hour

	idleSleepDuration      = 10 * time.Second
	postBatchSleepDuration = 5 * time.Second

	writerFlushSize     = 500
	writerFlushInterval = time.Second
	writerRPS           = 20
)

const (
	outcomeResolved   = "resolved"
	outcomeUnresolved = "unresolved"
	outcomeAbandoned  = "abandoned"
	outcomeProgressed = "progressed"
	outcomeUnchanged  = "unchanged"
	outcomeTerminal   = "terminal"
	outcomeError      = "error"
)
