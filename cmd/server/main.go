package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"krishi/config"
	"krishi/database"
	"krishi/router"

	// Auth
	authCtrlImp "krishi/pkg/auth/controllerImp"

	// Farm
	farmCtrlImp "krishi/pkg/farm/controllerImp"
	farmRepoImp "krishi/pkg/farm/repositoryImp"

	// Soil tests
	testCtrlImp "krishi/pkg/soiltest/controllerImp"
	testRepoImp "krishi/pkg/soiltest/repositoryImp"

	// Schedule
	schedCtrlImp "krishi/pkg/schedule/controllerImp"
	schedRepoImp "krishi/pkg/schedule/repositoryImp"

	// Recommendations
	recCtrlImp "krishi/pkg/recommend/controllerImp"
	recRepoImp "krishi/pkg/recommend/repositoryImp"
	recSvc "krishi/pkg/recommend/serviceImp"

	// Rules/model
	"krishi/pkg/agronomy"
	"krishi/pkg/ml"

	// Advisory KB
	advCtrlImp    "krishi/pkg/advisory/controllerImp"
	advRepoImp    "krishi/pkg/advisory/repositoryImp"
	advServiceImp "krishi/pkg/advisory/serviceImp"
	advEmbedder   "krishi/pkg/advisory/embedder"

	// Health
	healthCtrlImp "krishi/pkg/health/controllerImp"

	purCtrlImp "krishi/pkg/purchase/controllerImp"
	purRepoImp "krishi/pkg/purchase/repositoryImp"
	purSvcImp "krishi/pkg/purchase/serviceImp"
	"krishi/pkg/purchase"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	if err := db.AutoMigrate(&purchase.Purchase{}); err != nil {
		log.Fatalf("auto-migrate purchase: %v", err)
	}
	purSvc := purSvcImp.New(purRepoImp.New(db))
	purCtrl := purCtrlImp.New(purSvc)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	purCtrl.Register(e)
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/app.js"); err != nil {
		log.Printf("WARN: static/app.js not found: %v", err)
	}

	// 4) Agronomy rules (built-in tables unless config files override)
	rules, err := agronomy.LoadFromFiles(ruleFile(cfg.FertMetaCSV), ruleFile(cfg.CostRateXLSX))
	if err != nil {
		log.Fatalf("rules: %v", err)
	}

	// 5) Classifier (mock fallback for local dev)
	var model ml.Client
	if cfg.MLEndpoint != "" {
		model = ml.NewHTTP(cfg.MLEndpoint, cfg.MLAPIKey)
	} else {
		log.Printf("[ml] no ML_ENDPOINT set, using rule-based mock")
		model = ml.NewMock()
	}

	// 6) Advisory wiring
	emb := advEmbedder.New(
		os.Getenv("EMB_ENDPOINT"),
		os.Getenv("EMB_API_KEY"),
		os.Getenv("EMB_MODEL"),
	)
	advRepo := advRepoImp.New(db)
	advSvc := advServiceImp.New(advRepo, emb)
	advCtrl := advCtrlImp.New(advSvc)

	// 7) Repos/Controllers
	fRepo := farmRepoImp.New(db)
	tRepo := testRepoImp.New(db)
	sRepo := schedRepoImp.New(db)
	rRepo := recRepoImp.New(db)
	fCtrl := farmCtrlImp.New(fRepo)
	tCtrl := testCtrlImp.New(tRepo)
	scCtrl := schedCtrlImp.New(sRepo)

	rSvc := recSvc.NewRecommendService(rules, model, rRepo, sRepo, advSvc)
	rCtrl := recCtrlImp.NewRecommendCtrl(db, rSvc)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.MLEndpoint)

	// 8) Router
	r := router.New(
		e,
		fCtrl,
		rCtrl.Generate,
		rCtrl.List,
		rCtrl.Latest,
		tCtrl,
		scCtrl,
		authCtrl,
		advCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// ruleFile keeps missing optional config files from aborting startup.
func ruleFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		log.Printf("[rules] %s not found, using built-in defaults", path)
		return ""
	}
	return path
}
