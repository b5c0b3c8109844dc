// pkg/ml/mock_client.go

package ml

type mockClient struct{}

// NewMock returns a deterministic rule-based stand-in for the model server,
// used when no endpoint is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Predict(f Features) (*Prediction, error) {
	// Pick by the deepest nutrient shortfall relative to common field targets.
	needN := 80 - f.Nitrogen
	needP := 40 - f.Phosphorus
	needK := 160 - f.Potassium

	out := &Prediction{Fertilizer: "17-17-17", Confidence: 72}
	switch {
	case needN >= needP && needN >= needK && needN > 0:
		out = &Prediction{Fertilizer: "Urea", Confidence: 85}
	case needP >= needK && needP > 0:
		out = &Prediction{Fertilizer: "DAP", Confidence: 83}
	case needK > 0:
		out = &Prediction{Fertilizer: "10-26-26", Confidence: 78}
	}
	return out, nil
}
