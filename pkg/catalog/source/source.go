// Package source picks where the crop catalog comes from at startup and
// applies the integrity policy before anything is served.
package source

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropadvisor/config"
	"cropadvisor/database"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/catalog/repositoryImp"
)

const (
	Builtin = "builtin"
	SQLite  = "sqlite"
	Files   = "files"
)

// Open loads the catalog named by cfg.CatalogSource. The returned DB is
// non-nil only for the sqlite source; the caller owns it.
func Open(cfg config.AppConfig, log *zap.Logger) (*catalog.Catalog, *gorm.DB, error) {
	switch cfg.CatalogSource {
	case "", Builtin:
		return catalog.Default(), nil, nil

	case SQLite:
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		repo := repositoryImp.New(db)
		seeded, err := catalog.SeedIfEmpty(repo, catalog.Default())
		if err != nil {
			return nil, db, fmt.Errorf("seed catalog: %w", err)
		}
		if seeded {
			log.Info("catalog store was empty, seeded built-in table", zap.String("db", cfg.DBPath))
		}
		c, err := catalog.LoadFromRepository(repo)
		return c, db, err

	case Files:
		c, err := catalog.LoadFromFiles(cfg.CatalogCropsFile, cfg.CatalogRegionsFile)
		return c, nil, err
	}
	return nil, nil, fmt.Errorf("unknown catalog source %q (want builtin, sqlite or files)", cfg.CatalogSource)
}

// Check logs every finding of catalog.Validate. Gaps and invalid profiles
// are fatal only in strict mode; the generator skips gaps per request.
func Check(c *catalog.Catalog, strict bool, log *zap.Logger) error {
	rep := catalog.Validate(c)
	for _, m := range rep.Mismatches {
		log.Warn("catalog mismatch", zap.String("detail", m))
	}
	for _, g := range rep.Gaps {
		log.Error("catalog gap", zap.String("detail", g))
	}
	for _, p := range rep.Problems {
		log.Error("invalid crop profile", zap.String("detail", p))
	}
	if strict {
		return rep.Err()
	}
	return nil
}
