package graph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Identity derives the stable key for a (file, name) pair: a 64-bit hash of
// "file:name" rendered as 16 hex characters. Two symbols with the same file
// and name always collide to the same identity across independent scans.
func Identity(filePath, name string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(filePath+":"+name))
}
