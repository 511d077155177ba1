package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "foodgram"
	pgPassword = "foodgram"
	pgDatabase = "foodgram_test"

	// FOODGRAM_TEST_PG_TAG overrides the postgres image tag
	pgTagEnv     = "FOODGRAM_TEST_PG_TAG"
	pgDefaultTag = "15-alpine"
)

// Tables in truncation order, dependents first.
var cleanTables = []string{
	"shopping_carts",
	"favorites",
	"recipe_ingredients",
	"recipe_tags",
	"recipes",
	"subscriptions",
	"tags",
	"ingredients",
	"users",
}

// shared is the one postgres container used by every integration suite in the process
var shared struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

// BaseTestSuite gives integration suites a migrated database that is emptied
// around every test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a
// per-suite wrapper around it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = startSharedPostgres() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and purges the container. Packages
// with integration tests call it from TestMain.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}

	log.Printf("Purging Docker container: %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge shared resource: %v", err)
	}
	shared.pool = nil
	shared.resource = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the database; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every application table and resets identities so ids
// in assertions are predictable.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}

	existing := make([]string, 0, len(cleanTables))
	for _, table := range cleanTables {
		if s.DB.Migrator().HasTable(table) {
			existing = append(existing, `"`+table+`"`)
		}
	}
	if len(existing) == 0 {
		return
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(existing, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: truncate failed: %v", err)
	}
}

func startSharedPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	tag := os.Getenv(pgTagEnv)
	if tag == "" {
		tag = pgDefaultTag
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	shared.pool = pool
	shared.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("initialize test database: %w", err)
	}
	shared.db = db
	shared.config = &config.Config{
		DatabaseURL:  dsn,
		Port:         "8080",
		LogLevel:     "debug",
		Environment:  "test",
		PageSize:     6,
		ImageStorage: "local",
		MediaURL:     "/media",
	}

	log.Printf("Shared Postgres %s ready on port %s", tag, resource.GetPort("5432/tcp"))
	return nil
}

func pingPostgres(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Ping()
}
