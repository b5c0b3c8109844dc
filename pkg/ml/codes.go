// pkg/ml/codes.go

package ml

import "strings"

// Label encodings match the alphabetical LabelEncoder fit used when the
// classifier was trained. Unknown labels fall back to 0.
var soilCodes = map[string]int{
	"black":  0,
	"clayey": 1,
	"loamy":  2,
	"red":    3,
	"sandy":  4,
}

var cropCodes = map[string]int{
	"barley":      0,
	"cotton":      1,
	"ground nuts": 2,
	"maize":       3,
	"millets":     4,
	"oil seeds":   5,
	"paddy":       6,
	"pulses":      7,
	"sugarcane":   8,
	"tobacco":     9,
	"wheat":       10,
}

func SoilCode(label string) int {
	return soilCodes[strings.ToLower(strings.TrimSpace(label))]
}

func CropCode(label string) int {
	return cropCodes[strings.ToLower(strings.TrimSpace(label))]
}
