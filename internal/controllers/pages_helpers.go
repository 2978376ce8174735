package controllers

import (
	"fmt"
	"strconv"
	"strings"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// trimFloat renders weights/heights without trailing zeros (72.5, 180).
func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func hospitalPath(hospitalID uint, suffix string) string {
	return fmt.Sprintf("/api/hospitals/%d/%s", hospitalID, suffix)
}
