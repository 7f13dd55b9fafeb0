package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
)

// FormatStorageSize renders a byte count with 1024-based units and two decimals
func FormatStorageSize(sizeInBytes int64) string {
	switch {
	case sizeInBytes < kib:
		return fmt.Sprintf("%d Bytes", sizeInBytes)
	case sizeInBytes < mib:
		return fmt.Sprintf("%.2f KB", float64(sizeInBytes)/kib)
	case sizeInBytes < gib:
		return fmt.Sprintf("%.2f MB", float64(sizeInBytes)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(sizeInBytes)/gib)
	}
}

// ParseDollarAmount parses "$12.34" style amounts, returning 0 when malformed
func ParseDollarAmount(amount string) float64 {
	value, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(amount), "$"), 64)
	if err != nil {
		return 0
	}
	return value
}
