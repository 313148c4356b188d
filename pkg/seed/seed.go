// Package seed creates an initial set of records from a YAML file.
//
// Seeding goes through the regular stores, so every uniqueness and reference
// rule applies. Records that already exist are skipped, which makes a seed
// file safe to apply on every start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/store"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

type File struct {
	Admins    []types.Admin   `yaml:"admins"`
	Companies []types.Company `yaml:"companies"`
	Books     []types.Book    `yaml:"books"`
	Employees []Employee      `yaml:"employees"`
}

// Employee names its company instead of carrying an id, since ids are
// allocated while seeding
type Employee struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number"`
	Company     string `yaml:"company"`
}

// Result counts what a seed run did
type Result struct {
	Created int
	Skipped int
}

// Load parses a seed file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return f, nil
}

// Apply creates the records of f in dependency order: admins, companies,
// books, then employees. Conflicts, duplicates and employees of unknown
// companies are logged and skipped; any other error stops the run
func Apply(ctx context.Context, s *store.Store, f *File) (Result, error) {
	var res Result
	log := logger.Logger(ctx)

	existingAdmins, err := s.Admin.List(ctx)
	if err != nil {
		return res, err
	}
	adminNames := make(map[string]bool, len(existingAdmins))
	for _, a := range existingAdmins {
		adminNames[a.Name] = true
	}
	for _, admin := range f.Admins {
		if adminNames[admin.Name] {
			res.Skipped++
			continue
		}
		if _, err := s.Admin.Create(ctx, admin); err != nil {
			if err := skippable(log, "admin", admin.Name, err); err != nil {
				return res, err
			}
			res.Skipped++
			continue
		}
		adminNames[admin.Name] = true
		res.Created++
	}

	for _, company := range f.Companies {
		if _, err := s.Company.Create(ctx, company); err != nil {
			if err := skippable(log, "company", company.Name, err); err != nil {
				return res, err
			}
			res.Skipped++
			continue
		}
		res.Created++
	}

	for _, book := range f.Books {
		if _, err := s.Book.Create(ctx, book); err != nil {
			if err := skippable(log, "book", book.Name, err); err != nil {
				return res, err
			}
			res.Skipped++
			continue
		}
		res.Created++
	}

	if len(f.Employees) > 0 {
		if err := applyEmployees(ctx, s, f.Employees, &res); err != nil {
			return res, err
		}
	}

	log.WithFields(logrus.Fields{
		"created": res.Created,
		"skipped": res.Skipped,
	}).Info("seed applied")
	return res, nil
}

// applyEmployees resolves each employee's company by name and creates it
func applyEmployees(ctx context.Context, s *store.Store, employees []Employee, res *Result) error {
	log := logger.Logger(ctx)
	companies, err := s.Company.List(ctx)
	if err != nil {
		return err
	}
	companyIDs := make(map[string]int64, len(companies))
	for _, c := range companies {
		companyIDs[c.Name] = c.ID
	}

	for _, e := range employees {
		companyID, ok := companyIDs[e.Company]
		if !ok {
			log.WithFields(logrus.Fields{
				"email":   e.Email,
				"company": e.Company,
			}).Warn("skipping seed employee of unknown company")
			res.Skipped++
			continue
		}
		_, err := s.Employee.Create(ctx, types.Employee{
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Email:       e.Email,
			PhoneNumber: e.PhoneNumber,
			CompanyID:   companyID,
		})
		if err != nil {
			if err := skippable(log, "employee", e.Email, err); err != nil {
				return err
			}
			res.Skipped++
			continue
		}
		res.Created++
	}
	return nil
}

// skippable logs and swallows the record-level errors a re-run is expected
// to hit, and returns everything else
func skippable(log *logrus.Entry, kind, name string, err error) error {
	if errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrValidation) || errors.Is(err, store.ErrNotFound) {
		log.WithFields(logrus.Fields{
			"kind": kind,
			"name": name,
		}).WithError(err).Warn("skipping seed record")
		return nil
	}
	return fmt.Errorf("failed to seed %s %s: %w", kind, name, err)
}
