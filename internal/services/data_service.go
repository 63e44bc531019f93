package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/logger"
	"finplanner/internal/models"
)

// Document is the whole-store export format: one array per collection plus
// the export time. Missing keys import as empty collections.
type Document struct {
	UserProfiles   []models.UserProfile    `json:"userProfiles"`
	Expenses       []models.ExpenseItem    `json:"expenses"`
	SipInvestments []models.SipInvestment  `json:"sipInvestments"`
	FinancialGoals []models.FinancialGoal  `json:"financialGoals"`
	Transactions   []models.Transaction    `json:"transactions"`
	DashboardStats []models.DashboardStats `json:"dashboardStats"`
	PortfolioItems []models.PortfolioItem  `json:"portfolioItems"`
	ExportDate     string                  `json:"exportDate,omitempty"`
}

// collection binds one store table to its Document field. Export, import,
// clear and stats all walk the same registry.
type collection struct {
	name    string
	table   string
	serial  bool
	model   interface{}
	export  func(db *gorm.DB, doc *Document) error
	restore func(tx *gorm.DB, doc *Document, defaultOwner uint) (int, error)
}

type adoptable interface {
	AdoptOwner(ownerID uint)
}

func collectionOf[T schema.Tabler](name string, serial bool, field func(*Document) *[]T) collection {
	var zero T
	return collection{
		name:   name,
		table:  zero.TableName(),
		serial: serial,
		model:  new(T),
		export: func(db *gorm.DB, doc *Document) error {
			rows := []T{}
			if err := db.Order("id").Find(&rows).Error; err != nil {
				return err
			}
			*field(doc) = rows
			return nil
		},
		restore: func(tx *gorm.DB, doc *Document, defaultOwner uint) (int, error) {
			rows := *field(doc)
			if len(rows) == 0 {
				return 0, nil
			}
			for i := range rows {
				if a, ok := any(&rows[i]).(adoptable); ok {
					a.AdoptOwner(defaultOwner)
				}
			}
			if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
				return 0, err
			}
			return len(rows), nil
		},
	}
}

// collections lists every table in import order.
var collections = []collection{
	collectionOf("userProfiles", false, func(d *Document) *[]models.UserProfile { return &d.UserProfiles }),
	collectionOf("expenses", true, func(d *Document) *[]models.ExpenseItem { return &d.Expenses }),
	collectionOf("sipInvestments", true, func(d *Document) *[]models.SipInvestment { return &d.SipInvestments }),
	collectionOf("financialGoals", true, func(d *Document) *[]models.FinancialGoal { return &d.FinancialGoals }),
	collectionOf("transactions", true, func(d *Document) *[]models.Transaction { return &d.Transactions }),
	collectionOf("dashboardStats", false, func(d *Document) *[]models.DashboardStats { return &d.DashboardStats }),
	collectionOf("portfolioItems", true, func(d *Document) *[]models.PortfolioItem { return &d.PortfolioItems }),
}

// CollectionNames returns the collection keys in import order.
func CollectionNames() []string {
	names := make([]string, len(collections))
	for i, c := range collections {
		names[i] = c.name
	}
	return names
}

// dataService handles whole-store export, import and reset.
type dataService struct {
	db           *gorm.DB
	seeder       SeedServicer
	defaultOwner uint
}

// NewDataService creates a new DataServicer. Imported rows without an owner
// are assigned to defaultOwner.
func NewDataService(db *gorm.DB, seeder SeedServicer, defaultOwner uint) DataServicer {
	return &dataService{db: db, seeder: seeder, defaultOwner: defaultOwner}
}

// ExportAll reads every row of every collection.
func (s *dataService) ExportAll() (*Document, error) {
	doc := &Document{}
	for _, c := range collections {
		if err := c.export(s.db, doc); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, fmt.Errorf("exporting %s: %w", c.name, err))
		}
	}
	doc.ExportDate = time.Now().UTC().Format(time.RFC3339Nano)
	return doc, nil
}

// ImportAll replaces the store contents with doc. Each collection is written
// in its own transaction; on failure the collections already written stay.
func (s *dataService) ImportAll(doc *Document) error {
	log := logger.For("data")
	if doc == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "import document is empty")
	}

	if err := s.ClearAll(); err != nil {
		return err
	}

	for _, c := range collections {
		var inserted int
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var err error
			if inserted, err = c.restore(tx, doc, s.defaultOwner); err != nil {
				return err
			}
			if inserted > 0 && c.serial {
				return resyncSequence(tx, c.table)
			}
			return nil
		})
		if err != nil {
			log.Errorw("Import failed", "collection", c.name, "error", err)
			return apperrors.Wrap(apperrors.ErrImportFailed, fmt.Errorf("importing %s: %w", c.name, err))
		}
		log.Debugw("Imported collection", "collection", c.name, "rows", inserted)
	}

	log.Info("Import completed")
	return nil
}

// ClearAll deletes every row of every collection in one transaction.
func (s *dataService) ClearAll() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, c := range collections {
			if err := global.Delete(c.model).Error; err != nil {
				return fmt.Errorf("clearing %s: %w", c.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// ResetToDefaults clears the store and seeds the owner's defaults again.
func (s *dataService) ResetToDefaults(ownerID uint) error {
	if err := s.ClearAll(); err != nil {
		return err
	}
	return s.seeder.SeedIfEmpty(ownerID)
}

// Stats returns the row count of each collection.
func (s *dataService) Stats() (map[string]int64, error) {
	counts := make(map[string]int64, len(collections))
	for _, c := range collections {
		var n int64
		if err := s.db.Model(c.model).Count(&n).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, fmt.Errorf("counting %s: %w", c.name, err))
		}
		counts[c.name] = n
	}
	return counts, nil
}

// resyncSequence moves a Postgres id sequence past explicitly inserted ids.
// SQLite tracks AUTOINCREMENT itself.
func resyncSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
		table,
	)).Error
}

// ExportFileName returns the conventional file name of an export taken at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("financial-data-%s.json", t.Format("2006-01-02"))
}

// WriteDocument encodes doc as indented UTF-8 JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadDocument decodes an export file. Unknown keys are ignored.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Errorf("decoding import file: %w", err))
	}
	return &doc, nil
}

// WriteExportFile exports the whole store into dir and returns the file path.
func WriteExportFile(data DataServicer, dir string) (string, error) {
	doc, err := data.ExportAll()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ExportFileName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer f.Close()

	if err := WriteDocument(f, doc); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return path, f.Close()
}
