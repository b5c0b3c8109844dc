package agronomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"krishi/entities"
	"krishi/pkg/ml"
	"krishi/pkg/recommend/types"
)

// ErrInvalidInput marks requests whose numeric fields are missing,
// non-finite, or out of the required range. Nothing is computed past it.
var ErrInvalidInput = errors.New("invalid input")

type RulesEngine interface {
	NormalizeArea(size float64, unit string) (float64, error)
	AssessSoil(ph, nitrogen, phosphorus, potassium, moisture float64) types.SoilAssessment
	SelectFertilizers(pred *ml.Prediction, deficiency []string, areaHa float64, crop, soil string) (types.FertilizerChoice, types.FertilizerChoice)
	OrganicOptions(areaHa float64) []types.OrganicOption
	EstimateCost(areaHa float64) types.CostEstimate
	Timing() types.ApplicationTiming
	ToSchedule(f *entities.Farm, recID uint, rec *types.Recommendation) []entities.ApplicationTask
}

// Soil classification thresholds.
const (
	phAcidBelow     = 6.0
	phAlkalineAbove = 7.5
	moistureLow     = 40.0
	moistureHigh    = 80.0
	lowNitrogen     = 30.0
	lowPhosphorus   = 15.0
	lowPotassium    = 120.0
)

// Area multipliers to hectares.
var unitToHectares = map[string]float64{
	"hectares": 1.0,
	"acres":    0.404686,
	"bigha":    0.1338,
}

type fertMeta struct {
	Description string
	Application string
	NPK         string
}

type costRates struct {
	Primary   float64
	Secondary float64
	Organic   float64
}

type rules struct {
	meta  map[string]fertMeta // keyed by lowercase label
	rates costRates
}

var defaultRates = costRates{Primary: 4000, Secondary: 2500, Organic: 2000}

var defaultMeta = map[string]fertMeta{
	"urea":       {"High nitrogen fertilizer for vigorous vegetative growth", "Broadcast evenly and incorporate into moist soil, split over 2-3 doses", "46-0-0"},
	"dap":        {"Phosphorus-rich starter fertilizer for root establishment", "Place 5 cm below seed as basal dose at sowing", "18-46-0"},
	"14-35-14":   {"High phosphorus complex for early crop stages", "Apply as basal dose and cover with soil before irrigation", "14-35-14"},
	"28-28":      {"Balanced nitrogen-phosphorus complex for steady growth", "Broadcast at sowing and top-dress at tillering", "28-28-0"},
	"17-17-17":   {"Balanced NPK complex for general maintenance", "Broadcast uniformly and irrigate lightly after application", "17-17-17"},
	"20-20":      {"Nitrogen-phosphorus complex for medium-feeding crops", "Apply along rows and mix into the topsoil", "20-20-0"},
	"10-26-26":   {"Phosphorus-potassium complex for flowering and fruiting", "Apply at flowering initiation, away from the stem", "10-26-26"},
}

// LoadFromFiles builds a rules engine, overriding the compiled-in
// fertilizer metadata and cost rates from optional config files.
func LoadFromFiles(fertCSV, ratesXLSX string) (RulesEngine, error) {
	r := &rules{meta: map[string]fertMeta{}, rates: defaultRates}
	for k, v := range defaultMeta {
		r.meta[k] = v
	}

	if fertCSV != "" {
		if err := r.loadFertCSV(fertCSV); err != nil {
			return nil, err
		}
	}
	if ratesXLSX != "" {
		_ = r.loadRatesXLSX(ratesXLSX)
	}

	if len(r.meta) == 0 {
		return nil, errors.New("no fertilizer metadata loaded")
	}
	return r, nil
}

func (r *rules) loadFertCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("Fertilizer", "name", "label")
	cDesc := findAny("Description", "desc", "reason")
	cApp := findAny("Application", "application_method", "method", "howtoapply")
	cNPK := findAny("NPK", "npk_ratio", "ratio")

	if cName == -1 || cDesc == -1 {
		return fmt.Errorf("FertilizerMeta.csv missing required columns. Found headers: %v\nNeed at least: Fertilizer, Description", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		r.meta[strings.ToLower(name)] = fertMeta{
			Description: get(cDesc),
			Application: get(cApp),
			NPK:         get(cNPK),
		}
	}
	return nil
}

func (r *rules) loadRatesXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows("Rates")
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(strings.TrimSpace(row[1]), "%f", &v); err != nil || v <= 0 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case "primary":
			r.rates.Primary = v
		case "secondary":
			r.rates.Secondary = v
		case "organic":
			r.rates.Organic = v
		}
	}
	return nil
}

// NormalizeArea converts a field size to hectares. Unknown units keep the
// identity multiplier on purpose; a bad size is the only error path.
func (r *rules) NormalizeArea(size float64, unit string) (float64, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return 0, fmt.Errorf("%w: field size must be a positive number, got %v", ErrInvalidInput, size)
	}
	mul, ok := unitToHectares[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		mul = 1.0
	}
	return size * mul, nil
}

func (r *rules) AssessSoil(ph, nitrogen, phosphorus, potassium, moisture float64) types.SoilAssessment {
	a := types.SoilAssessment{PHStatus: "Optimal", MoistureStatus: "Optimal"}

	if ph < phAcidBelow {
		a.PHStatus = "Acidic"
	} else if ph > phAlkalineAbove {
		a.PHStatus = "Alkaline"
	}

	if moisture < moistureLow {
		a.MoistureStatus = "Low"
	} else if moisture > moistureHigh {
		a.MoistureStatus = "High"
	}

	// evaluation order N -> P -> K fixes list order
	if nitrogen < lowNitrogen {
		a.NutrientDeficiency = append(a.NutrientDeficiency, "Nitrogen")
	}
	if phosphorus < lowPhosphorus {
		a.NutrientDeficiency = append(a.NutrientDeficiency, "Phosphorus")
	}
	if potassium < lowPotassium {
		a.NutrientDeficiency = append(a.NutrientDeficiency, "Potassium")
	}

	// guidance list always has exactly five entries, fixed order
	switch a.PHStatus {
	case "Acidic":
		a.Recommendations = append(a.Recommendations, "Adjust soil pH using lime")
	case "Alkaline":
		a.Recommendations = append(a.Recommendations, "Adjust soil pH using sulfur")
	default:
		a.Recommendations = append(a.Recommendations, "Maintain current pH levels")
	}
	switch a.MoistureStatus {
	case "Low":
		a.Recommendations = append(a.Recommendations, "Increase irrigation frequency to raise soil moisture")
	case "High":
		a.Recommendations = append(a.Recommendations, "Improve drainage to reduce excess soil moisture")
	default:
		a.Recommendations = append(a.Recommendations, "Maintain current moisture levels")
	}
	if len(a.NutrientDeficiency) > 0 {
		a.Recommendations = append(a.Recommendations, "Address "+strings.Join(a.NutrientDeficiency, ", ")+" deficiency")
	} else {
		a.Recommendations = append(a.Recommendations, "Nutrient levels are adequate")
	}
	a.Recommendations = append(a.Recommendations,
		"Conduct soil testing every 6 months",
		"Practice crop rotation to maintain soil health",
	)
	return a
}

func (r *rules) SelectFertilizers(pred *ml.Prediction, deficiency []string, areaHa float64, crop, soil string) (types.FertilizerChoice, types.FertilizerChoice) {
	primary := types.FertilizerChoice{
		Name:   pred.Fertilizer,
		Amount: roundKg(100 * areaHa),
	}
	if m, ok := r.meta[strings.ToLower(pred.Fertilizer)]; ok {
		primary.Reason = m.Description
		if m.NPK != "" {
			primary.Reason += " (NPK " + m.NPK + ")"
		}
		primary.ApplicationMethod = m.Application
	} else {
		// unknown label from the model degrades to generic guidance, never errors
		primary.Reason = fmt.Sprintf("Recommended for %s cultivation on %s soil", crop, soil)
		primary.ApplicationMethod = "Apply as per standard agricultural practices"
	}

	has := func(n string) bool {
		for _, d := range deficiency {
			if d == n {
				return true
			}
		}
		return false
	}

	// priority order, first match wins; nitrogen alone is already covered by
	// the classifier-driven primary and does not change the secondary
	var secondary types.FertilizerChoice
	switch {
	case has("Phosphorus"):
		secondary = types.FertilizerChoice{
			Name:              "DAP",
			Amount:            roundKg(50 * areaHa),
			Reason:            "Corrects phosphorus deficiency for root development",
			ApplicationMethod: "Apply as basal dose before sowing",
		}
	case has("Potassium"):
		secondary = types.FertilizerChoice{
			Name:              "Potassium sulfate",
			Amount:            roundKg(40 * areaHa),
			Reason:            "Corrects potassium deficiency and improves stress tolerance",
			ApplicationMethod: "Apply at fruit development stage",
		}
	default:
		secondary = types.FertilizerChoice{
			Name:              "Organic Compost",
			Amount:            roundKg(1000 * areaHa),
			Reason:            "Improves soil structure and water retention",
			ApplicationMethod: "Spread evenly and mix into the topsoil",
		}
	}
	return primary, secondary
}

func (r *rules) OrganicOptions(areaHa float64) []types.OrganicOption {
	return []types.OrganicOption{
		{
			Name:              "Vermicompost",
			Amount:            roundKg(1000 * areaHa),
			Benefits:          "Improves soil structure, microbial activity and nutrient retention",
			ApplicationTiming: "Apply 2-3 weeks before sowing",
		},
		{
			Name:              "Neem Cake",
			Amount:            roundKg(200 * areaHa),
			Benefits:          "Slow-release nitrogen with natural pest suppression",
			ApplicationTiming: "Apply at the time of sowing",
		},
		{
			Name:              "Bone Meal",
			Amount:            roundKg(150 * areaHa),
			Benefits:          "Long-lasting phosphorus and calcium source",
			ApplicationTiming: "Apply during land preparation",
		},
	}
}

// EstimateCost rounds each component before summing, so the total can be off
// by a couple of units from the unrounded sum. Kept for compatibility with
// the published estimates.
func (r *rules) EstimateCost(areaHa float64) types.CostEstimate {
	p := roundKg(r.rates.Primary * areaHa)
	s := roundKg(r.rates.Secondary * areaHa)
	o := roundKg(r.rates.Organic * areaHa)
	return types.CostEstimate{Primary: p, Secondary: s, Organic: o, Total: p + s + o}
}

func (r *rules) Timing() types.ApplicationTiming {
	return types.ApplicationTiming{
		Primary:   "Apply in 2-3 split doses across the growing season",
		Secondary: "Apply as basal dose at sowing or at the stage named above",
		Organic:   "Apply 2-3 weeks before sowing during land preparation",
	}
}

// ToSchedule materializes a recommendation into dated application tasks.
func (r *rules) ToSchedule(f *entities.Farm, recID uint, rec *types.Recommendation) []entities.ApplicationTask {
	start := f.SowingDate
	if start.IsZero() {
		start = time.Now()
	}
	mk := func(days int, typ, title string, kg int, notes string) entities.ApplicationTask {
		qty := float64(kg)
		return entities.ApplicationTask{
			FarmID: f.FarmID, RecID: recID,
			Date: start.AddDate(0, 0, days),
			Type: typ, Title: title, Qty: &qty, Unit: "kg", Notes: notes, Status: "todo",
		}
	}

	var out []entities.ApplicationTask
	for _, o := range rec.OrganicOptions {
		out = append(out, mk(-14, "organic", "Apply "+o.Name, o.Amount, o.ApplicationTiming))
	}
	out = append(out, mk(0, "basal", "Apply "+rec.SecondaryFertilizer.Name, rec.SecondaryFertilizer.Amount, rec.SecondaryFertilizer.ApplicationMethod))
	// split the primary across three top-dressings
	split := rec.PrimaryFertilizer.Amount / 3
	for i, days := range []int{0, 30, 60} {
		kg := split
		if i == 2 {
			kg = rec.PrimaryFertilizer.Amount - 2*split
		}
		out = append(out, mk(days, "topdress", fmt.Sprintf("Apply %s (dose %d/3)", rec.PrimaryFertilizer.Name, i+1), kg, rec.PrimaryFertilizer.ApplicationMethod))
	}
	return out
}

func roundKg(v float64) int { return int(math.Round(v)) }
