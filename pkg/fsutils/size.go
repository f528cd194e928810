package fsutils

import "github.com/dustin/go-humanize"

// GetSizeShortText returns a human readable size string in binary units.
func GetSizeShortText(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}
