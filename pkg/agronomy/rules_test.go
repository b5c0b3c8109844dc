package agronomy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/ml"
	"krishi/pkg/recommend/types"
)

func recFixture(r RulesEngine, primary, secondary types.FertilizerChoice) *types.Recommendation {
	return &types.Recommendation{
		PrimaryFertilizer:   primary,
		SecondaryFertilizer: secondary,
		OrganicOptions:      r.OrganicOptions(2),
		ApplicationTiming:   r.Timing(),
		CostEstimate:        r.EstimateCost(2),
	}
}

func newEngine(t *testing.T) RulesEngine {
	t.Helper()
	r, err := LoadFromFiles("", "")
	require.NoError(t, err)
	return r
}

func TestNormalizeArea(t *testing.T) {
	r := newEngine(t)

	cases := []struct {
		size float64
		unit string
		want float64
	}{
		{1, "hectares", 1},
		{2, "hectares", 2},
		{1, "acres", 0.404686},
		{10, "acres", 4.04686},
		{1, "bigha", 0.1338},
		{5, "bigha", 0.669},
		{3, "katha", 3}, // unknown unit keeps identity multiplier
		{3, "", 3},
	}
	for _, c := range cases {
		got, err := r.NormalizeArea(c.size, c.unit)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9, "size=%v unit=%q", c.size, c.unit)
	}
}

func TestNormalizeAreaRejectsBadSize(t *testing.T) {
	r := newEngine(t)
	for _, size := range []float64{0, -1, -0.5} {
		_, err := r.NormalizeArea(size, "hectares")
		assert.ErrorIs(t, err, ErrInvalidInput, "size=%v", size)
	}
}

func TestAssessSoilPHBoundaries(t *testing.T) {
	r := newEngine(t)
	cases := map[float64]string{
		5.9: "Acidic",
		6.0: "Optimal",
		7.5: "Optimal",
		7.6: "Alkaline",
	}
	for ph, want := range cases {
		a := r.AssessSoil(ph, 50, 20, 150, 60)
		assert.Equal(t, want, a.PHStatus, "ph=%v", ph)
	}
}

func TestAssessSoilMoistureBoundaries(t *testing.T) {
	r := newEngine(t)
	cases := map[float64]string{
		39.9: "Low",
		40:   "Optimal",
		80:   "Optimal",
		80.1: "High",
	}
	for m, want := range cases {
		a := r.AssessSoil(6.5, 50, 20, 150, m)
		assert.Equal(t, want, a.MoistureStatus, "moisture=%v", m)
	}
}

func TestAssessSoilDeficiencyOrder(t *testing.T) {
	r := newEngine(t)

	a := r.AssessSoil(6.5, 29, 14, 119, 60)
	assert.Equal(t, []string{"Nitrogen", "Phosphorus", "Potassium"}, a.NutrientDeficiency)

	a = r.AssessSoil(6.5, 30, 15, 120, 60)
	assert.Empty(t, a.NutrientDeficiency)
}

func TestAssessSoilGuidanceHasFiveEntries(t *testing.T) {
	r := newEngine(t)

	a := r.AssessSoil(5.5, 20, 10, 100, 30)
	require.Len(t, a.Recommendations, 5)
	assert.Equal(t, "Adjust soil pH using lime", a.Recommendations[0])
	assert.Equal(t, "Increase irrigation frequency to raise soil moisture", a.Recommendations[1])
	assert.Equal(t, "Address Nitrogen, Phosphorus, Potassium deficiency", a.Recommendations[2])

	a = r.AssessSoil(8.0, 50, 20, 150, 90)
	require.Len(t, a.Recommendations, 5)
	assert.Equal(t, "Adjust soil pH using sulfur", a.Recommendations[0])
	assert.Equal(t, "Improve drainage to reduce excess soil moisture", a.Recommendations[1])
	assert.Equal(t, "Nutrient levels are adequate", a.Recommendations[2])

	a = r.AssessSoil(6.5, 50, 20, 150, 60)
	require.Len(t, a.Recommendations, 5)
	assert.Equal(t, "Maintain current pH levels", a.Recommendations[0])
	assert.Equal(t, "Maintain current moisture levels", a.Recommendations[1])
}

func TestSelectFertilizersPrimary(t *testing.T) {
	r := newEngine(t)
	pred := &ml.Prediction{Fertilizer: "Urea", Confidence: 87}

	primary, _ := r.SelectFertilizers(pred, nil, 2, "Paddy", "Loamy")
	assert.Equal(t, "Urea", primary.Name)
	assert.Equal(t, 200, primary.Amount)
	assert.Contains(t, primary.Reason, "nitrogen")
	assert.NotEmpty(t, primary.ApplicationMethod)
}

func TestSelectFertilizersUnknownLabelFallsBack(t *testing.T) {
	r := newEngine(t)
	pred := &ml.Prediction{Fertilizer: "SuperGro 9000", Confidence: 55}

	primary, _ := r.SelectFertilizers(pred, nil, 1, "Wheat", "Sandy")
	assert.Equal(t, "SuperGro 9000", primary.Name)
	assert.Equal(t, "Recommended for Wheat cultivation on Sandy soil", primary.Reason)
	assert.Equal(t, "Apply as per standard agricultural practices", primary.ApplicationMethod)
}

func TestSelectFertilizersSecondaryPriority(t *testing.T) {
	r := newEngine(t)
	pred := &ml.Prediction{Fertilizer: "Urea", Confidence: 87}

	cases := []struct {
		deficiency []string
		wantName   string
		wantAmount int
	}{
		{[]string{"Phosphorus"}, "DAP", 100},
		{[]string{"Nitrogen", "Phosphorus", "Potassium"}, "DAP", 100},
		{[]string{"Potassium"}, "Potassium sulfate", 80},
		{[]string{"Nitrogen", "Potassium"}, "Potassium sulfate", 80},
		{nil, "Organic Compost", 2000},
		// nitrogen alone never changes the secondary: the primary covers it
		{[]string{"Nitrogen"}, "Organic Compost", 2000},
	}
	for _, c := range cases {
		_, secondary := r.SelectFertilizers(pred, c.deficiency, 2, "Paddy", "Loamy")
		assert.Equal(t, c.wantName, secondary.Name, "deficiency=%v", c.deficiency)
		assert.Equal(t, c.wantAmount, secondary.Amount, "deficiency=%v", c.deficiency)
	}
}

func TestOrganicOptions(t *testing.T) {
	r := newEngine(t)
	opts := r.OrganicOptions(2)
	require.Len(t, opts, 3)
	assert.Equal(t, "Vermicompost", opts[0].Name)
	assert.Equal(t, 2000, opts[0].Amount)
	assert.Equal(t, "Neem Cake", opts[1].Name)
	assert.Equal(t, 400, opts[1].Amount)
	assert.Equal(t, "Bone Meal", opts[2].Name)
	assert.Equal(t, 300, opts[2].Amount)
}

func TestEstimateCost(t *testing.T) {
	r := newEngine(t)
	est := r.EstimateCost(2)
	assert.Equal(t, 8000, est.Primary)
	assert.Equal(t, 5000, est.Secondary)
	assert.Equal(t, 4000, est.Organic)
	assert.Equal(t, 17000, est.Total)
}

func TestEstimateCostRoundsComponentsBeforeTotal(t *testing.T) {
	r := newEngine(t)
	// 0.3333 ha: each component rounds on its own, the total is the sum of
	// the rounded parts rather than the rounded true sum
	est := r.EstimateCost(0.3333)
	assert.Equal(t, 1333, est.Primary)
	assert.Equal(t, 833, est.Secondary)
	assert.Equal(t, 667, est.Organic)
	assert.Equal(t, est.Primary+est.Secondary+est.Organic, est.Total)
}

func TestToSchedule(t *testing.T) {
	r := newEngine(t)
	farm := &entities.Farm{FarmID: 7, SowingDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}

	pred := &ml.Prediction{Fertilizer: "Urea", Confidence: 87}
	primary, secondary := r.SelectFertilizers(pred, []string{"Phosphorus"}, 2, "Paddy", "Loamy")
	rec := recFixture(r, primary, secondary)

	tasks := r.ToSchedule(farm, 42, rec)
	// 3 organic + 1 basal + 3 topdress
	require.Len(t, tasks, 7)
	for _, task := range tasks {
		assert.Equal(t, uint(7), task.FarmID)
		assert.Equal(t, uint(42), task.RecID)
		assert.Equal(t, "todo", task.Status)
	}
	assert.Equal(t, time.Date(2026, 5, 18, 0, 0, 0, 0, time.UTC), tasks[0].Date)

	// primary split doses sum back to the full amount
	sum := 0
	for _, task := range tasks[4:] {
		sum += int(*task.Qty)
	}
	assert.Equal(t, primary.Amount, sum)
}

func TestLoadFertCSVStripsBOMHeader(t *testing.T) {
	// exported spreadsheets often carry a UTF-8 BOM before the first header
	csv := "\ufeffFertilizer,Description,Application,NPK\n" +
		"Zinc Sulphate,Corrects zinc deficiency in paddy,Broadcast with the basal dose,\n"
	path := filepath.Join(t.TempDir(), "FertilizerMeta.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	r, err := LoadFromFiles(path, "")
	require.NoError(t, err)

	pred := &ml.Prediction{Fertilizer: "Zinc Sulphate", Confidence: 70}
	primary, _ := r.SelectFertilizers(pred, nil, 1, "Paddy", "Loamy")
	assert.Equal(t, "Zinc Sulphate", primary.Name)
	assert.Equal(t, "Corrects zinc deficiency in paddy", primary.Reason)
	assert.Equal(t, "Broadcast with the basal dose", primary.ApplicationMethod)
}
