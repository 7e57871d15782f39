package common

import (
	"testing"
	"time"
)

func TestIsStale_NilLastSync(t *testing.T) {
	if !IsStale(time.Now(), nil, 15) {
		t.Error("Expected nil last-sync to be stale")
	}
}

func TestIsStale_Fresh(t *testing.T) {
	now := time.Now()
	lastSync := now.Add(-5 * time.Minute)

	if IsStale(now, &lastSync, 15) {
		t.Error("Expected 5 minutes old cache to be fresh with 15 minute threshold")
	}
}

func TestIsStale_ExactlyAtThreshold(t *testing.T) {
	now := time.Now()
	lastSync := now.Add(-15 * time.Minute)

	if !IsStale(now, &lastSync, 15) {
		t.Error("Expected cache exactly at the threshold to be stale")
	}
}

func TestIsStale_PastThreshold(t *testing.T) {
	now := time.Now()
	lastSync := now.Add(-20 * time.Minute)

	if !IsStale(now, &lastSync, 15) {
		t.Error("Expected 20 minutes old cache to be stale with 15 minute threshold")
	}
}

func TestJointThreshold_MinimumWins(t *testing.T) {
	if got := JointThreshold(15, 60); got != 15 {
		t.Errorf("Expected 15, got %d", got)
	}
	if got := JointThreshold(60, 15); got != 15 {
		t.Errorf("Expected 15, got %d", got)
	}
	if got := JointThreshold(30, 30); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
}
