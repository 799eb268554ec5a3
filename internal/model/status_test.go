package model

import "testing"

func TestTaskStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		active   bool
		finished bool
	}{
		{TaskStatusStarting, true, false},
		{TaskStatusDownloading, true, false},
		{TaskStatusTrimming, true, false},
		{TaskStatusTranscribing, true, false},
		{TaskStatusStopping, true, false},
		{TaskStatusStopped, false, true},
		{TaskStatusCompleted, false, true},
		{TaskStatusError, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, expected %v", got, tt.active)
			}
			if got := tt.status.IsFinished(); got != tt.finished {
				t.Errorf("IsFinished() = %v, expected %v", got, tt.finished)
			}
			if tt.active && tt.finished {
				t.Error("a status cannot be both active and finished")
			}
		})
	}
}

func TestTaskStatus_String(t *testing.T) {
	if got := TaskStatusTrimming.String(); got != "Trimming" {
		t.Errorf("TaskStatus.String() = %s, expected Trimming", got)
	}
}
