package tracking

import (
	"math"
	"strings"
)

const (
	basePoints     = 1
	imageBonus     = 1
	largeFileBonus = 2
	dataFileBonus  = 3
	maxPoints      = 20

	sizeMultiplier  = 0.05
	largeFileMB     = 10.0
	bytesPerMB      = 1024 * 1024
	contributorFrom = 50
	expertFrom      = 200
)

// CalculatePoints scores one upload from its declared size and type.
// Additive: base, image bonus, size share (about 1 point per 20MB), large
// file bonus above 10MB, data file bonus for CSV/JSON/Excel. Capped at 20.
func CalculatePoints(fileName string, fileSize int64, mimeType string) int {
	sizeMB := float64(fileSize) / bytesPerMB

	points := basePoints
	if strings.HasPrefix(mimeType, "image/") {
		points += imageBonus
	}
	points += int(math.Floor(sizeMB * sizeMultiplier))
	if sizeMB > largeFileMB {
		points += largeFileBonus
	}
	if isDataFile(fileName, mimeType) {
		points += dataFileBonus
	}

	if points > maxPoints {
		return maxPoints
	}
	return points
}

// isDataFile reports whether the MIME type or filename marks a structured
// data file (CSV, JSON, Excel).
func isDataFile(fileName, mimeType string) bool {
	mt := strings.ToLower(mimeType)
	if strings.Contains(mt, "csv") || strings.Contains(mt, "json") ||
		strings.Contains(mt, "excel") || strings.Contains(mt, "spreadsheet") {
		return true
	}
	name := strings.ToLower(fileName)
	for _, ext := range []string{".csv", ".json", ".xls", ".xlsx"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// TrustLevel maps cumulative points to a contributor tier.
func TrustLevel(totalPoints int64) string {
	switch {
	case totalPoints >= expertFrom:
		return "Expert"
	case totalPoints >= contributorFrom:
		return "Contributor"
	default:
		return "Newcomer"
	}
}
