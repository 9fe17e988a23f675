package service

import (
	"context"
	"fmt"

	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/importer"
	"github.com/ellisbraun/haven/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, userID, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	return s.importSchema(ctx, userID, schema)
}

func (s *importService) ImportFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, userID, schema)
}

func (s *importService) importSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	entries, err := importer.Convert(schema, userID)
	if err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}

	// All or nothing: a failure partway through must not leave a half
	// imported calendar.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCalendar := repository.NewSQLiteCalendarRepo(tx)
		for _, entry := range entries {
			if err := txCalendar.Insert(ctx, entry); err != nil {
				return fmt.Errorf("inserting %q: %w", entry.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Inserted: len(entries)}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
