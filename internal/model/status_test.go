package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusIdle, false},
		{TaskStatusPending, true},
		{TaskStatusDownloading, true},
		{TaskStatusCompleted, false},
		{TaskStatusCancelled, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		if got := test.status.IsActive(); got != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusIdle, false},
		{TaskStatusPending, false},
		{TaskStatusDownloading, false},
		{TaskStatusCompleted, true},
		{TaskStatusCancelled, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	if TaskStatusDownloading.String() != "Downloading" {
		t.Errorf("String() = %s, expected Downloading", TaskStatusDownloading.String())
	}
}
