package watcher

import "time"

// Config tunes the watch loop. Zero values fall back to defaults.
type Config struct {
	WorkerCount     int
	ChunkSize       int
	FetchLimit      int
	ResolveDeadline time.Duration
	IdleSleep       time.Duration
	PostBatchSleep  time.Duration
	FlushSize       int
	FlushInterval   time.Duration
	FlushRPS        int
}

func (c Config) withDefaults() Config {
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.FetchLimit <= 0 {
		c.FetchLimit = defaultFetchLimit
	}
	if c.ResolveDeadline <= 0 {
		c.ResolveDeadline = defaultResolveDeadline
	}
	if c.IdleSleep <= 0 {
		c.IdleSleep = idleSleepDuration
	}
	if c.PostBatchSleep <= 0 {
		c.PostBatchSleep = postBatchSleepDuration
	}
	if c.FlushSize <= 0 {
		c.FlushSize = writerFlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = writerFlushInterval
	}
	if c.FlushRPS <= 0 {
		c.FlushRPS = writerRPS
	}
	return c
}
