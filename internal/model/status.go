package model

// TaskStatus represents the status of a download shown in the UI
type TaskStatus string

const (
	// TaskStatusIdle means no download has been requested yet
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusPending means the request is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the download is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the download finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusCancelled means the download was stopped by the user
	TaskStatusCancelled TaskStatus = "Cancelled"

	// TaskStatusError means the download failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if a download is currently in flight
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the last download reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCancelled || ts == TaskStatusError
}
