package download

// Package download implements the download-request workflow. The coordinator
// consumes DownloadRequest values from a channel, performs at most one
// provider fetch at a time, and pushes typed DownloadResult values back on a
// result channel for the presentation layer. All failures are recovered here
// and returned as results; none are fatal to the process.
