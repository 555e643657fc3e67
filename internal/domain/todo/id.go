package todo

import (
	"math"
	"strconv"
)

// MaxID is the largest identifier the repository can store (SQLite INTEGER).
const MaxID int64 = math.MaxInt64

// ParseID converts a path segment into a todo identifier. Only base-10
// integers in [1, MaxID] are accepted; everything else, including zero,
// negatives, decimals and out-of-range magnitudes, yields ErrInvalidID.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}
