package utils

import "strconv"

// StringToUint64 parses a decimal id, returning 0 when str is not one.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
