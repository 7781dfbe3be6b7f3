package model

import "time"

// DownloadResult is the outcome of a single download attempt: either a saved
// file path or a categorized error. A cancelled attempt carries neither.
type DownloadResult struct {
	RequestID  string
	SavedPath  string
	Err        *DownloadError
	Canceled   bool
	FinishedAt time.Time
}

// Success builds a result for a completed download.
func Success(requestID, savedPath string) DownloadResult {
	return DownloadResult{
		RequestID:  requestID,
		SavedPath:  savedPath,
		FinishedAt: time.Now(),
	}
}

// Failure builds a result for a failed download.
func Failure(requestID string, err *DownloadError) DownloadResult {
	return DownloadResult{
		RequestID:  requestID,
		Err:        err,
		FinishedAt: time.Now(),
	}
}

// Cancelled builds a result for a download stopped by the user.
func Cancelled(requestID string) DownloadResult {
	return DownloadResult{
		RequestID:  requestID,
		Canceled:   true,
		FinishedAt: time.Now(),
	}
}

// OK reports whether the download produced a saved file.
func (r DownloadResult) OK() bool {
	return r.Err == nil && !r.Canceled
}

// Kind returns the error kind for failed results, "" otherwise.
func (r DownloadResult) Kind() ErrorKind {
	if r.Err == nil {
		return ""
	}
	return r.Err.Kind
}

// VideoInfo describes a video before download, as returned by the provider's
// probe operation.
type VideoInfo struct {
	Title        string
	Duration     time.Duration
	SizeEstimate int64 // bytes, 0 when unknown
}
