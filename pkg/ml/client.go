// pkg/ml/client.go

package ml

import "errors"

// ErrUnavailable wraps any failure of the external classifier. The engine
// never substitutes a default fertilizer when the model cannot answer.
var ErrUnavailable = errors.New("classifier unavailable")

// Features is the vector sent to the fertilizer classifier, in the encoding
// the model was trained with.
type Features struct {
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Moisture     float64 `json:"moisture"`
	SoilType     int     `json:"soil_type"`
	CropType     int     `json:"crop_type"`
	Nitrogen     float64 `json:"nitrogen"`
	Potassium    float64 `json:"potassium"`
	Phosphorus   float64 `json:"phosphorus"`
}

type Prediction struct {
	Fertilizer string  `json:"fertilizer"`
	Confidence float64 `json:"confidence"` // 0-100
}

type Client interface {
	Predict(f Features) (*Prediction, error)
}
