package serviceImp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"krishi/entities"
	"krishi/pkg/agronomy"
	"krishi/pkg/ml"
	recrepo "krishi/pkg/recommend/repository"
	"krishi/pkg/recommend/types"
	schedrepo "krishi/pkg/schedule/repository"
)

type advisorySearcher interface {
	Search(query string, k int) ([]entities.AdvisoryChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.AdvisoryDoc, error)
}

type RecommendSvc struct {
	rules     agronomy.RulesEngine
	model     ml.Client
	repoRec   recrepo.RecommendRepository
	repoSched schedrepo.ScheduleRepository
	advisory  advisorySearcher
}

func NewRecommendService(r agronomy.RulesEngine, m ml.Client, rr recrepo.RecommendRepository, sr schedrepo.ScheduleRepository, adv advisorySearcher) *RecommendSvc {
	return &RecommendSvc{rules: r, model: m, repoRec: rr, repoSched: sr, advisory: adv}
}

// parseReadings enforces the input contract: every numeric field must be a
// finite number. A parse failure fails the whole request, nothing defaults.
func parseReadings(in types.FieldInput) (*types.Readings, error) {
	out := &types.Readings{
		SizeUnit: strings.TrimSpace(in.SizeUnit),
		CropType: strings.TrimSpace(in.CropType),
		SoilType: strings.TrimSpace(in.SoilType),
	}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"field_size", in.FieldSize, &out.FieldSize},
		{"soil_ph", in.SoilPH, &out.SoilPH},
		{"nitrogen", in.Nitrogen, &out.Nitrogen},
		{"phosphorus", in.Phosphorus, &out.Phosphorus},
		{"potassium", in.Potassium, &out.Potassium},
		{"temperature", in.Temperature, &out.Temperature},
		{"humidity", in.Humidity, &out.Humidity},
		{"soil_moisture", in.SoilMoisture, &out.SoilMoisture},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s must be a number, got %q", agronomy.ErrInvalidInput, f.name, f.raw)
		}
		*f.dst = v
	}
	return out, nil
}

// Derive runs the full pipeline over already-parsed inputs, the normalized
// area and a classifier prediction. Pure and deterministic: same inputs,
// same result.
func (s *RecommendSvc) Derive(rd *types.Readings, area float64, pred *ml.Prediction) *types.Recommendation {
	assessment := s.rules.AssessSoil(rd.SoilPH, rd.Nitrogen, rd.Phosphorus, rd.Potassium, rd.SoilMoisture)
	primary, secondary := s.rules.SelectFertilizers(pred, assessment.NutrientDeficiency, area, rd.CropType, rd.SoilType)

	return &types.Recommendation{
		PrimaryFertilizer:   primary,
		SecondaryFertilizer: secondary,
		OrganicOptions:      s.rules.OrganicOptions(area),
		ApplicationTiming:   s.rules.Timing(),
		CostEstimate:        s.rules.EstimateCost(area),
		SoilCondition:       assessment,
		MLPrediction:        types.MLPrediction{Fertilizer: pred.Fertilizer, Confidence: pred.Confidence},
	}
}

// Generate parses the input, calls the classifier, derives the
// recommendation and persists it together with its application schedule.
func (s *RecommendSvc) Generate(farm *entities.Farm, in types.FieldInput) (*entities.Recommendation, *types.Recommendation, []entities.ApplicationTask, error) {
	rd, err := parseReadings(in)
	if err != nil {
		return nil, nil, nil, err
	}
	area, err := s.rules.NormalizeArea(rd.FieldSize, rd.SizeUnit)
	if err != nil {
		return nil, nil, nil, err
	}

	pred, err := s.model.Predict(ml.Features{
		Temperature: rd.Temperature,
		Humidity:    rd.Humidity,
		Moisture:    rd.SoilMoisture,
		SoilType:    ml.SoilCode(rd.SoilType),
		CropType:    ml.CropCode(rd.CropType),
		Nitrogen:    rd.Nitrogen,
		Potassium:   rd.Potassium,
		Phosphorus:  rd.Phosphorus,
	})
	if err != nil {
		// no fallback label here: the caller decides how to surface this
		return nil, nil, nil, err
	}

	result := s.Derive(rd, area, pred)

	version := 1
	if last, err := s.repoRec.LatestByFarm(farm.FarmID); err == nil {
		version = last.Version + 1
	}
	detail, _ := json.Marshal(result)
	rec := &entities.Recommendation{
		FarmID:       farm.FarmID,
		Version:      version,
		Fertilizer:   result.PrimaryFertilizer.Name,
		Secondary:    result.SecondaryFertilizer.Name,
		Confidence:   pred.Confidence,
		AreaHectares: area,
		TotalCost:    result.CostEstimate.Total,
		Deficiency:   result.SoilCondition.NutrientDeficiency,
		DetailJSON:   string(detail),
	}
	if err := s.repoRec.Create(rec); err != nil {
		return nil, nil, nil, err
	}

	tasks := s.rules.ToSchedule(farm, rec.RecID, result)
	if err := s.repoSched.BulkInsert(tasks); err != nil {
		return nil, nil, nil, err
	}

	rec.SuggestedArticles = s.suggestArticles(rd, result)
	return rec, result, tasks, nil
}

func (s *RecommendSvc) suggestArticles(rd *types.Readings, result *types.Recommendation) []entities.ArticleRef {
	if s.advisory == nil {
		return nil
	}
	terms := []string{rd.CropType, result.PrimaryFertilizer.Name}
	terms = append(terms, result.SoilCondition.NutrientDeficiency...)
	chunks, _ := s.advisory.Search(strings.Join(terms, " "), 6)
	if len(chunks) == 0 {
		return nil
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}
	meta, err := s.advisory.DocsMeta(ids)
	if err != nil {
		return nil
	}
	var refs []entities.ArticleRef
	for _, id := range ids {
		if d, ok := meta[id]; ok {
			refs = append(refs, entities.ArticleRef{Title: d.Title, URL: d.SourceURL})
		}
	}
	return refs
}

func (s *RecommendSvc) ListByFarm(farmID uint) ([]entities.Recommendation, error) {
	return s.repoRec.ListByFarm(farmID)
}

func (s *RecommendSvc) LatestByFarm(farmID uint) (*entities.Recommendation, error) {
	return s.repoRec.LatestByFarm(farmID)
}
