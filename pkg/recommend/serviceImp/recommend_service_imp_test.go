package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/agronomy"
	"krishi/pkg/ml"
	"krishi/pkg/recommend/types"
)

type fakeRecRepo struct {
	recs []entities.Recommendation
}

func (f *fakeRecRepo) Create(r *entities.Recommendation) error {
	r.RecID = uint(len(f.recs) + 1)
	f.recs = append(f.recs, *r)
	return nil
}

func (f *fakeRecRepo) LatestByFarm(farmID uint) (*entities.Recommendation, error) {
	for i := len(f.recs) - 1; i >= 0; i-- {
		if f.recs[i].FarmID == farmID {
			return &f.recs[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRecRepo) ListByFarm(farmID uint) ([]entities.Recommendation, error) {
	var out []entities.Recommendation
	for _, r := range f.recs {
		if r.FarmID == farmID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSchedRepo struct {
	tasks []entities.ApplicationTask
}

func (f *fakeSchedRepo) BulkInsert(ts []entities.ApplicationTask) error {
	f.tasks = append(f.tasks, ts...)
	return nil
}

func (f *fakeSchedRepo) List(farmID uint, from, to string) ([]entities.ApplicationTask, error) {
	return f.tasks, nil
}

func (f *fakeSchedRepo) PatchStatus(taskID uint, status string, qty *float64) error { return nil }

type fixedClient struct{ pred ml.Prediction }

func (c *fixedClient) Predict(f ml.Features) (*ml.Prediction, error) {
	p := c.pred
	return &p, nil
}

type downClient struct{}

func (c *downClient) Predict(f ml.Features) (*ml.Prediction, error) {
	return nil, ml.ErrUnavailable
}

func newSvc(t *testing.T, model ml.Client) (*RecommendSvc, *fakeRecRepo, *fakeSchedRepo) {
	t.Helper()
	rules, err := agronomy.LoadFromFiles("", "")
	require.NoError(t, err)
	rr := &fakeRecRepo{}
	sr := &fakeSchedRepo{}
	return NewRecommendService(rules, model, rr, sr, nil), rr, sr
}

func sampleInput() types.FieldInput {
	return types.FieldInput{
		FieldSize:    "2",
		SizeUnit:     "hectares",
		CropType:     "Paddy",
		SoilType:     "Loamy",
		SoilPH:       "5.5",
		Nitrogen:     "20",
		Phosphorus:   "10",
		Potassium:    "100",
		Temperature:  "25",
		Humidity:     "60",
		SoilMoisture: "30",
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	svc, rr, sr := newSvc(t, &fixedClient{ml.Prediction{Fertilizer: "Urea", Confidence: 87}})
	farm := &entities.Farm{FarmID: 1, UserID: "U1", CropType: "Paddy", SoilType: "Loamy"}

	rec, result, tasks, err := svc.Generate(farm, sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "Acidic", result.SoilCondition.PHStatus)
	assert.Equal(t, "Low", result.SoilCondition.MoistureStatus)
	assert.Equal(t, []string{"Nitrogen", "Phosphorus", "Potassium"}, result.SoilCondition.NutrientDeficiency)

	assert.Equal(t, "Urea", result.PrimaryFertilizer.Name)
	assert.Equal(t, 200, result.PrimaryFertilizer.Amount)
	assert.Equal(t, "DAP", result.SecondaryFertilizer.Name)
	assert.Equal(t, 100, result.SecondaryFertilizer.Amount)

	require.Len(t, result.OrganicOptions, 3)
	assert.Equal(t, 2000, result.OrganicOptions[0].Amount)
	assert.Equal(t, 400, result.OrganicOptions[1].Amount)
	assert.Equal(t, 300, result.OrganicOptions[2].Amount)

	assert.Equal(t, types.CostEstimate{Primary: 8000, Secondary: 5000, Organic: 4000, Total: 17000}, result.CostEstimate)
	assert.Equal(t, types.MLPrediction{Fertilizer: "Urea", Confidence: 87}, result.MLPrediction)

	// persisted record mirrors the result
	require.Len(t, rr.recs, 1)
	assert.Equal(t, 1, rec.Version)
	assert.Equal(t, "Urea", rec.Fertilizer)
	assert.Equal(t, "DAP", rec.Secondary)
	assert.Equal(t, 17000, rec.TotalCost)
	assert.InDelta(t, 2.0, rec.AreaHectares, 1e-9)
	assert.NotEmpty(t, rec.DetailJSON)

	assert.NotEmpty(t, tasks)
	assert.Len(t, sr.tasks, len(tasks))
}

func TestGenerateVersionsIncrement(t *testing.T) {
	svc, _, _ := newSvc(t, &fixedClient{ml.Prediction{Fertilizer: "Urea", Confidence: 87}})
	farm := &entities.Farm{FarmID: 1, UserID: "U1"}

	r1, _, _, err := svc.Generate(farm, sampleInput())
	require.NoError(t, err)
	r2, _, _, err := svc.Generate(farm, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Version)
	assert.Equal(t, 2, r2.Version)
}

func TestDeriveIsDeterministic(t *testing.T) {
	svc, _, _ := newSvc(t, &fixedClient{ml.Prediction{Fertilizer: "Urea", Confidence: 87}})

	rd, err := parseReadings(sampleInput())
	require.NoError(t, err)
	pred := &ml.Prediction{Fertilizer: "Urea", Confidence: 87}

	a := svc.Derive(rd, 2.0, pred)
	b := svc.Derive(rd, 2.0, pred)
	assert.Equal(t, a, b)
}

func TestGenerateRejectsBadNumbers(t *testing.T) {
	svc, rr, sr := newSvc(t, &fixedClient{ml.Prediction{Fertilizer: "Urea", Confidence: 87}})
	farm := &entities.Farm{FarmID: 1}

	bad := sampleInput()
	bad.Nitrogen = "plenty"
	_, _, _, err := svc.Generate(farm, bad)
	assert.ErrorIs(t, err, agronomy.ErrInvalidInput)

	bad = sampleInput()
	bad.SoilPH = ""
	_, _, _, err = svc.Generate(farm, bad)
	assert.ErrorIs(t, err, agronomy.ErrInvalidInput)

	bad = sampleInput()
	bad.FieldSize = "-2"
	_, _, _, err = svc.Generate(farm, bad)
	assert.ErrorIs(t, err, agronomy.ErrInvalidInput)

	// nothing persisted on failure
	assert.Empty(t, rr.recs)
	assert.Empty(t, sr.tasks)
}

func TestGeneratePropagatesClassifierFailure(t *testing.T) {
	svc, rr, _ := newSvc(t, &downClient{})
	farm := &entities.Farm{FarmID: 1}

	_, _, _, err := svc.Generate(farm, sampleInput())
	assert.ErrorIs(t, err, ml.ErrUnavailable)
	assert.Empty(t, rr.recs)
}
