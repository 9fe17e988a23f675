package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ellisbraun/haven/internal/cli"
	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/llm"
	"github.com/ellisbraun/haven/internal/repository"
	"github.com/ellisbraun/haven/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.haven/haven.db
	dbPath := os.Getenv("HAVEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".haven", "haven.db")
	}

	userID := os.Getenv("HAVEN_USER")
	if userID == "" {
		userID = "default"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	calendarRepo := repository.NewSQLiteCalendarRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	generator, err := llm.NewClient(llmCfg, observer)
	if err != nil {
		return err
	}

	app := &cli.App{
		Plans:       service.NewPlanService(calendarRepo, assessmentRepo, generator, uow, useCaseObserver),
		Calendar:    service.NewCalendarService(calendarRepo),
		Assessments: service.NewAssessmentService(assessmentRepo),
		Import:      service.NewImportService(uow),
		UserID:      userID,
		Session:     service.NewDraftSession(userID),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
