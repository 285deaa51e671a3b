package waitlist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/venskie03/fokus/internal/migrate"
	"github.com/venskie03/fokus/internal/testutil"
)

// RepositorySuite runs against a real Postgres named by TEST_DATABASE_DSN
type RepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *testutil.TestDB
	repo *Repository
	svc  *Service
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	db, err := testutil.SetupTestDB(s.ctx)
	if errors.Is(err, testutil.ErrNoTestDatabase) {
		s.T().Skip("set " + testutil.DSNEnv + " to run database tests")
	}
	s.Require().NoError(err)

	s.db = db
	s.repo = NewRepository(db.DB, testLogger())
	s.svc = NewService(s.repo, testLogger())
}

func (s *RepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NoError(s.db.Truncate(s.ctx))
}

func (s *RepositorySuite) TestSchemaIsMigrated() {
	m := migrate.NewMigrator(s.db.DB, zap.NewNop())

	s.Require().NoError(m.Up(s.ctx), "re-running migrations is a no-op")

	version, err := m.Version(s.ctx)
	s.Require().NoError(err)
	s.GreaterOrEqual(version, int64(1))
}

func (s *RepositorySuite) TestInsertReturnsGeneratedColumns() {
	entry, err := s.repo.Insert(s.ctx, "a@b.co")
	s.Require().NoError(err)

	s.NotEmpty(entry.ID.String())
	s.Equal("a@b.co", entry.Email)
	s.False(entry.CreatedAt.IsZero())
	s.False(entry.UpdatedAt.IsZero())
}

func (s *RepositorySuite) TestDuplicateCaseInsensitive() {
	_, err := s.svc.Join(s.ctx, "a@b.co")
	s.Require().NoError(err)

	_, err = s.svc.Join(s.ctx, "A@B.CO")
	s.Equal(ErrEmailExists, err)

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *RepositorySuite) TestConcurrentDuplicatesInsertOnce() {
	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Join(s.ctx, "race@example.com")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrEmailExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(workers-1, conflicts)

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}
