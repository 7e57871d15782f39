package common

import "time"

// IsStale reports whether a cached record must be refetched. A record with
// no last-sync timestamp is always stale.
func IsStale(now time.Time, lastSync *time.Time, thresholdMinutes int) bool {
	if lastSync == nil {
		return true
	}
	return now.Sub(*lastSync) >= time.Duration(thresholdMinutes)*time.Minute
}

// JointThreshold returns the effective threshold when two sources are fetched
// together under one refresh event. The minimum wins, so a refetch happens
// whenever either source would otherwise be stale.
func JointThreshold(a, b int) int {
	if a < b {
		return a
	}
	return b
}
