package cursor

import "time"

// filetimeToUTC converts a Windows FILETIME tick count (100-ns
// intervals since 1601-01-01 UTC) to a UTC time.Time.
func filetimeToUTC(ticks uint64) time.Time {
	unixTicks := int64(ticks) - filetimeEpochOffset
	return time.Unix(0, unixTicks*100).UTC()
}
