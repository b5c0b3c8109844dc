package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	MLEndpoint   string
	MLAPIKey     string
	FertMetaCSV  string
	CostRateXLSX string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "Asia/Kolkata"),
		DBPath:       get("DB_PATH", "krishi.db"),
		MLEndpoint:   get("ML_ENDPOINT", ""),
		MLAPIKey:     get("ML_API_KEY", ""),
		FertMetaCSV:  get("FERT_META_CSV", "./FertilizerMeta.csv"),
		CostRateXLSX: get("COST_RATE_XLSX", "./CostRates.xlsx"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
