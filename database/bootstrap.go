// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"krishi/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// run the PK rebuild BEFORE AutoMigrate so GORM doesn't attempt the
	// failing ALTER TABLE on old databases
	if err := migrateRecommendationsAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Farm{},
		&entities.SoilTest{},
		&entities.Recommendation{},
		&entities.ApplicationTask{},
		&entities.AdvisoryDoc{},
		&entities.AdvisoryChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateRecommendationsAddPK rebuilds recommendations if an old database
// created the table without a primary key on rec_id. SQLite cannot add a PK
// in place, so the table is recreated and the rows copied over.
func migrateRecommendationsAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='recommendations'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(recommendations)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasPK := false
	for _, c := range cols {
		if strings.ToLower(c.Name) == "rec_id" {
			if c.Pk == 1 {
				hasPK = true
			}
			break
		}
	}
	if hasPK {
		return nil
	}

	createSQL := `
CREATE TABLE recommendations_new (
    rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
    farm_id INTEGER,
    version INTEGER,
    fertilizer TEXT,
    secondary TEXT,
    confidence REAL,
    area_hectares REAL,
    total_cost INTEGER,
    deficiency TEXT,    -- JSON text (gorm serializer)
    detail_json TEXT,
    created_at DATETIME
);
`
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO recommendations_new (farm_id, version, fertilizer, secondary, confidence, area_hectares, total_cost, deficiency, detail_json, created_at)
SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM recommendations;
`,
		sel("farm_id"),
		sel("version"),
		sel("fertilizer"),
		sel("secondary"),
		sel("confidence"),
		sel("area_hectares"),
		sel("total_cost"),
		sel("deficiency"),
		sel("detail_json"),
		sel("created_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE recommendations`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE recommendations_new RENAME TO recommendations`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}
