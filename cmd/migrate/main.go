// Command migrate управляет схемой базы RoadShare: таблицы users,
// drivers, cars, travels, inscriptions, справочники каталога и
// constraint'ы бронирования (уникальность пары, триггер вместимости).
//
// Usage:
//
//	migrate -command up
//	migrate down 1
//	migrate version
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	var (
		migrationsPath string
		databaseURL    string
		command        string
		steps          int
		confirmDrop    bool
	)

	flag.StringVar(&migrationsPath, "path", "./migrations", "Path to migrations directory")
	flag.StringVar(&databaseURL, "database-url", "", "Database connection URL")
	flag.StringVar(&command, "command", "up", "Migration command: up, down, force, version, drop")
	flag.IntVar(&steps, "steps", 0, "Number of steps for up/down (0 = all)")
	flag.BoolVar(&confirmDrop, "yes", false, "Confirm destructive commands (drop)")
	flag.Parse()

	_ = godotenv.Load()

	if databaseURL == "" {
		databaseURL = resolveDatabaseURL()
	}

	// Позиционные аргументы перекрывают флаги: `migrate down 1`
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
	}
	if len(args) > 1 && command != "force" && command != "create" {
		var err error
		steps, err = strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("invalid steps argument: %v", err)
		}
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}
	defer m.Close()

	m.Log = &migrationLogger{}

	switch command {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration up failed: %v", err)
		}
		fmt.Println("RoadShare schema is up to date")

	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration down failed: %v", err)
		}
		fmt.Println("Migrations rolled back")

	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("invalid version: %v", err)
		}
		if err := m.Force(version); err != nil {
			log.Fatalf("force failed: %v", err)
		}
		fmt.Printf("Forced version to %d\n", version)

	case "version":
		version, dirty, err := m.Version()
		switch {
		case errors.Is(err, migrate.ErrNilVersion):
			fmt.Println("No migrations applied yet")
		case err != nil:
			log.Fatalf("failed to get version: %v", err)
		default:
			fmt.Printf("Current version: %d (dirty: %v)\n", version, dirty)
		}

	case "drop":
		// drop уносит поездки и бронирования вместе со схемой
		if !confirmDrop {
			log.Fatal("drop destroys all RoadShare data; re-run with -yes to confirm")
		}
		if err := m.Drop(); err != nil {
			log.Fatalf("drop failed: %v", err)
		}
		fmt.Println("All tables dropped")

	case "create":
		if len(args) < 2 {
			log.Fatal("create requires a migration name")
		}
		next := nextMigrationHint(migrationsPath)
		fmt.Printf("Create the pair manually:\n")
		fmt.Printf("  %s/%s_%s.up.sql\n", migrationsPath, next, args[1])
		fmt.Printf("  %s/%s_%s.down.sql\n", migrationsPath, next, args[1])

	default:
		log.Fatalf("unknown command: %s\nAvailable commands: up, down, force, version, drop, create", command)
	}
}

// resolveDatabaseURL собирает DSN из окружения, теми же переменными,
// что использует конфигурация API (ROADSHARE_DATABASE_* / DB_*).
func resolveDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := envOr("ROADSHARE_DATABASE_HOST", envOr("DB_HOST", "localhost"))
	port := envOr("ROADSHARE_DATABASE_PORT", envOr("DB_PORT", "5432"))
	user := envOr("ROADSHARE_DATABASE_USER", envOr("DB_USER", "postgres"))
	password := envOr("ROADSHARE_DATABASE_PASSWORD", envOr("DB_PASSWORD", "postgres"))
	dbname := envOr("ROADSHARE_DATABASE_DATABASE", envOr("DB_NAME", "roadshare"))
	sslmode := envOr("ROADSHARE_DATABASE_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// nextMigrationHint подсказывает номер следующей миграции по числу
// уже существующих up-файлов.
func nextMigrationHint(path string) string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return "XXXXXX"
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && len(e.Name()) > 7 && e.Name()[6] == '_' {
			if _, err := strconv.Atoi(e.Name()[:6]); err == nil && strings.HasSuffix(e.Name(), ".up.sql") {
				count++
			}
		}
	}
	return fmt.Sprintf("%06d", count+1)
}

// migrationLogger implements migrate.Logger
type migrationLogger struct{}

func (l *migrationLogger) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func (l *migrationLogger) Verbose() bool {
	return true
}
