package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Avishake00/schl-scheduler-frontend/internal/cache"
	"github.com/Avishake00/schl-scheduler-frontend/internal/config"
	"github.com/Avishake00/schl-scheduler-frontend/internal/events"
	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories/rest"
	"github.com/Avishake00/schl-scheduler-frontend/internal/services"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

const usage = `usage: scheduler <command> [flags]

commands:
  login      -email -password -role   authenticate and persist the session
  logout                              clear the session
  whoami                              print the current session
  classes    [-student id] [-date d]  list classes
  students                            list students
  timetable  -date d [-student id] [-out dir] [-xlsx]
                                      build and export a daily timetable
`

type app struct {
	session  *services.SessionService
	repo     repositories.Repository
	exporter func(dir string) *services.TimetableExporter
	logger   *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Session mirror: Redis when configured, in-memory otherwise
	var store cache.Store = cache.NewMemoryStore()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse REDIS_URL: %v", err)
		}
		store = cache.NewRedisStore(redis.NewClient(opts), "scheduler:")
	}

	// Mutation bus for UI refresh notifications
	bus := events.NewBus(logger)
	defer bus.Close()

	// Remote data access layer
	client := rest.NewClient(rest.ClientConfig{
		BaseURL:  cfg.APIBaseURL,
		Throttle: &cfg.RequestThrottle,
		Logger:   logger,
	})
	repo := rest.NewRepository(client, validator.New(), bus)

	// Session store with the pluggable credential policy
	session := services.NewSessionService(store, services.DefaultVerifiers(repo.Auth()), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := session.Hydrate(ctx); err != nil {
		logger.Warn("session hydration failed", "error", err)
	}

	a := &app{
		session: session,
		repo:    repo,
		exporter: func(dir string) *services.TimetableExporter {
			return services.NewTimetableExporter(services.FileSaver{Dir: dir}, logger)
		},
		logger: logger,
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.session.Logout(ctx)
	case "whoami":
		return a.whoami()
	case "classes":
		return a.classes(ctx, args)
	case "students":
		return a.students(ctx)
	case "timetable":
		return a.timetable(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "login email")
	password := fs.String("password", "", "teacher password or student ID")
	role := fs.String("role", "teacher", "teacher or student")
	fs.Parse(args)

	user, err := a.session.Login(ctx, *email, *password, models.UserRole(*role))
	if err != nil {
		if reason := a.session.LastError(); reason != "" {
			return fmt.Errorf("login failed: %s", reason)
		}
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func (a *app) whoami() error {
	user := a.session.Current()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) classes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("classes", flag.ExitOnError)
	studentID := fs.String("student", "", "filter by roster membership")
	date := fs.String("date", "", "filter by calendar date (2006-01-02)")
	fs.Parse(args)

	classes, err := a.fetchClasses(ctx, *studentID, *date)
	if err != nil {
		return err
	}

	for _, class := range classes {
		fmt.Printf("%s  %s %s  %-30s room=%s\n",
			class.ID, class.Date, class.Time, class.Subject, class.Room)
	}
	return nil
}

func (a *app) students(ctx context.Context) error {
	students, err := a.repo.Student().List(ctx)
	if err != nil {
		return err
	}

	for _, student := range students {
		fmt.Printf("%s  %-20s %-25s %s\n", student.ID, student.Name, student.Email, student.Major)
	}
	return nil
}

func (a *app) timetable(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("timetable", flag.ExitOnError)
	date := fs.String("date", "", "target day (2006-01-02)")
	studentID := fs.String("student", "", "build for one student's roster")
	out := fs.String("out", ".", "output directory")
	xlsx := fs.Bool("xlsx", false, "also export a workbook")
	fs.Parse(args)

	if *date == "" {
		return fmt.Errorf("timetable requires -date")
	}
	day, err := time.Parse(services.DateLayout, *date)
	if err != nil {
		return fmt.Errorf("invalid -date: %w", err)
	}

	classes, err := a.fetchClasses(ctx, *studentID, *date)
	if err != nil {
		return err
	}

	timetable := services.BuildDailyTimetable(classes, day)
	fmt.Print(services.RenderTimetableText(timetable))

	exporter := a.exporter(*out)
	if err := exporter.ExportText(timetable); err != nil {
		return err
	}
	if *xlsx {
		if err := exporter.ExportXLSX(timetable); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) fetchClasses(ctx context.Context, studentID, date string) ([]models.Class, error) {
	classRepo := a.repo.Class()
	switch {
	case studentID != "" && date != "":
		return classRepo.ListForStudentOnDate(ctx, studentID, date)
	case studentID != "":
		return classRepo.ListForStudent(ctx, studentID)
	case date != "":
		return classRepo.ListByDate(ctx, date)
	default:
		return classRepo.List(ctx)
	}
}
