package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cropadvisor/database"
	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/catalog/repositoryImp"
	"cropadvisor/pkg/catalog/source"
)

func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and maintain the crop catalog",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(newCatalogListCommand(a))
	cmd.AddCommand(newCatalogValidateCommand(a))
	cmd.AddCommand(newCatalogSeedCommand(a))
	return cmd
}

func newCatalogListCommand(a *app) *cobra.Command {
	var regionName, format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List crop profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(a)
			if err != nil {
				return err
			}
			profiles := cat.Profiles()
			if regionName != "" {
				r, ok := entities.ParseRegion(regionName)
				if !ok {
					return fmt.Errorf("unknown region %q", regionName)
				}
				profiles = profiles[:0]
				for _, name := range cat.Candidates(r) {
					if p, ok := cat.Profile(name); ok {
						profiles = append(profiles, p)
					}
				}
			}
			return listProfiles(cmd.OutOrStdout(), format, profiles)
		},
	}
	cmd.Flags().StringVar(&regionName, "region", "", "Only crops listed for this region, in list order")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	return cmd
}

func listProfiles(w io.Writer, format string, profiles []entities.CropProfile) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	case "yaml":
		return yaml.NewEncoder(w).Encode(profiles)
	case "text":
		for _, p := range profiles {
			regs := make([]string, len(p.Regions))
			for i, r := range p.Regions {
				regs[i] = string(r)
			}
			fmt.Fprintf(w, "%-12s pH %.1f-%.1f  N/P/K %s/%s/%s  water %-6s profit %3d  ease %3d  [%s]\n",
				p.Name, p.PHRange[0], p.PHRange[1], p.Nitrogen, p.Phosphorus, p.Potassium,
				p.Water, p.Profitability, p.EaseOfCultivation, strings.Join(regs, ","))
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q: must be text, json or yaml", format)
}

func newCatalogValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check region lists against crop profiles",
		Long: `Reports region list entries with no crop profile (gaps), crops listed
under a region their own region set does not include (mismatches) and
profiles with unusable values. Fails when gaps or invalid profiles exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, db, err := source.Open(a.cfg, a.log)
			if err != nil {
				return err
			}
			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					defer sqlDB.Close()
				}
			}
			rep := catalog.Validate(cat)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d crops, %d gaps, %d mismatches, %d invalid profiles\n",
				cat.Len(), len(rep.Gaps), len(rep.Mismatches), len(rep.Problems))
			for _, s := range rep.Gaps {
				fmt.Fprintln(w, "gap:      ", s)
			}
			for _, s := range rep.Mismatches {
				fmt.Fprintln(w, "mismatch: ", s)
			}
			for _, s := range rep.Problems {
				fmt.Fprintln(w, "invalid:  ", s)
			}
			return rep.Err()
		},
	}
}

func newCatalogSeedCommand(a *app) *cobra.Command {
	var from string
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a catalog into the SQLite store",
		Long: `Writes the built-in catalog (or the CSV/XLSX tables with --from files) into
the SQLite database at --db. An existing catalog is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat *catalog.Catalog
				err error
			)
			switch from {
			case source.Builtin:
				cat = catalog.Default()
			case source.Files:
				cat, err = catalog.LoadFromFiles(a.cfg.CatalogCropsFile, a.cfg.CatalogRegionsFile)
			default:
				return fmt.Errorf("--from must be builtin or files, got %q", from)
			}
			if err != nil {
				return err
			}
			if err := catalog.Validate(cat).Err(); err != nil {
				return err
			}

			db, err := database.OpenSQLite(a.cfg.DBPath)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			repo := repositoryImp.New(db)

			w := cmd.OutOrStdout()
			if force {
				if err := catalog.Save(repo, cat); err != nil {
					return err
				}
				fmt.Fprintf(w, "wrote %d crops to %s\n", cat.Len(), a.cfg.DBPath)
				return nil
			}
			seeded, err := catalog.SeedIfEmpty(repo, cat)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintf(w, "wrote %d crops to %s\n", cat.Len(), a.cfg.DBPath)
			} else {
				fmt.Fprintf(w, "%s already has a catalog; use --force to replace it\n", a.cfg.DBPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", source.Builtin, "Catalog to write: builtin or files")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing catalog")
	return cmd
}

// openCatalog loads and checks the configured catalog for read-only commands.
func openCatalog(a *app) (*catalog.Catalog, error) {
	cat, db, err := source.Open(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return cat, source.Check(cat, a.cfg.CatalogStrict, a.log)
}
