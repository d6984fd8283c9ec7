package ingest

import "github.com/google/uuid"

// mentionNamespace salts the deterministic mention IDs.
var mentionNamespace = uuid.MustParse("8f3c6f1a-52f0-4c6e-9d2a-7f5b1f0f5f10")

// mentionID derives a stable ID from the tracker and item, so a
// redelivered item maps to the same mention instead of a duplicate.
func mentionID(trackerID, itemID string) string {
	return uuid.NewSHA1(mentionNamespace, []byte(trackerID+"/"+itemID)).String()
}
