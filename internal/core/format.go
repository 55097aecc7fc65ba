package core

import "fmt"

// FormatSize renders a byte count using binary units (1 KB = 1024 B).
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < 0 {
		return "-" + FormatSize(-bytes)
	}
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTP"[exp])
}

// FormatMB renders a byte count as megabytes with two decimals.
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

// FormatGB renders a byte count as gigabytes with two decimals.
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
}
