package types

// FieldInput is the raw request payload. Numeric fields arrive as strings
// from the form boundary and must parse before use; a bad number fails the
// whole request.
type FieldInput struct {
	FieldSize    string `json:"field_size"`
	SizeUnit     string `json:"size_unit"` // hectares|acres|bigha
	CropType     string `json:"crop_type"`
	SoilType     string `json:"soil_type"`
	SoilPH       string `json:"soil_ph"`
	Nitrogen     string `json:"nitrogen"`
	Phosphorus   string `json:"phosphorus"`
	Potassium    string `json:"potassium"`
	Temperature  string `json:"temperature"`
	Humidity     string `json:"humidity"`
	SoilMoisture string `json:"soil_moisture"`
}

// Readings is the parsed numeric view of a FieldInput.
type Readings struct {
	FieldSize    float64
	SizeUnit     string
	CropType     string
	SoilType     string
	SoilPH       float64
	Nitrogen     float64
	Phosphorus   float64
	Potassium    float64
	Temperature  float64
	Humidity     float64
	SoilMoisture float64
}

type SoilAssessment struct {
	PHStatus           string   `json:"ph_status"`       // Acidic|Alkaline|Optimal
	MoistureStatus     string   `json:"moisture_status"` // Low|Optimal|High
	NutrientDeficiency []string `json:"nutrient_deficiency"`
	Recommendations    []string `json:"recommendations"`
}

type FertilizerChoice struct {
	Name              string `json:"name"`
	Amount            int    `json:"amount"` // kg, scaled by hectares
	Reason            string `json:"reason"`
	ApplicationMethod string `json:"application_method"`
}

type OrganicOption struct {
	Name              string `json:"name"`
	Amount            int    `json:"amount"` // kg
	Benefits          string `json:"benefits"`
	ApplicationTiming string `json:"application_timing"`
}

type CostEstimate struct {
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
	Organic   int `json:"organic"`
	Total     int `json:"total"`
}

type ApplicationTiming struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Organic   string `json:"organic"`
}

type MLPrediction struct {
	Fertilizer string  `json:"fertilizer"`
	Confidence float64 `json:"confidence"`
}

// Recommendation is the full derived result for one request. It is assembled
// once and never mutated afterwards.
type Recommendation struct {
	PrimaryFertilizer   FertilizerChoice  `json:"primary_fertilizer"`
	SecondaryFertilizer FertilizerChoice  `json:"secondary_fertilizer"`
	OrganicOptions      []OrganicOption   `json:"organic_options"`
	ApplicationTiming   ApplicationTiming `json:"application_timing"`
	CostEstimate        CostEstimate      `json:"cost_estimate"`
	SoilCondition       SoilAssessment    `json:"soil_condition"`
	MLPrediction        MLPrediction      `json:"ml_prediction"`
}
