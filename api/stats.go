// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting types exposed by block pools for observability.

package api

// BlockPoolStats aggregates block allocation/reuse stats.
type BlockPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	// ClassStats counts retained free blocks per capacity class.
	ClassStats map[int]int64
}
