package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Seeder struct {
	config SeedConfig
	log    zerolog.Logger
	clock  func() time.Time
	graph  *DependencyGraph
}

func New(cfg SeedConfig, log zerolog.Logger) *Seeder {
	graph := NewDependencyGraph()
	graph.AddTable(TableCustomers)
	graph.AddTable(TableBranches)
	graph.AddTable(TableEmployees)
	graph.AddTable(TableManagement, TableEmployees)
	graph.AddTable(TableAccounts, TableCustomers)
	graph.AddTable(TableTransactions, TableAccounts)
	graph.AddTable(TableLoans, TableCustomers)
	graph.AddTable(TablePayments, TableLoans)

	return &Seeder{
		config: cfg,
		log:    log,
		clock:  time.Now,
		graph:  graph,
	}
}

// WithClock fixes the generation-time "now", read once per run.
func (s *Seeder) WithClock(clock func() time.Time) *Seeder {
	s.clock = clock
	return s
}

// Run generates every table in dependency order. Any failure aborts the run
// and no partial dataset is returned.
func (s *Seeder) Run(ctx context.Context) (*Dataset, error) {
	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build generation order: %w", err)
	}

	now := s.clock()
	gen := NewGenerator(s.config.Seed, now)
	gen.Unique().Reset()

	ds := &Dataset{RunID: uuid.NewString()}
	log := s.log.With().Str("run_id", ds.RunID).Logger()
	log.Info().
		Int64("seed", s.config.Seed).
		Time("now", now).
		Str("order", strings.Join(order, " -> ")).
		Msg("starting generation")

	for _, table := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		started := time.Now()
		rows, err := s.generate(gen, ds, table)
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("generation failed")
			return nil, fmt.Errorf("failed to generate %s: %w", table, err)
		}

		log.Debug().
			Str("table", table).
			Int("rows", rows).
			Dur("took", time.Since(started)).
			Msg("table generated")
	}

	log.Info().Msg("generation complete")
	return ds, nil
}

func (s *Seeder) generate(gen *Generator, ds *Dataset, table string) (int, error) {
	var err error
	switch table {
	case TableCustomers:
		ds.Customers, err = gen.GenerateCustomers(s.config.Customers)
		return len(ds.Customers), err
	case TableBranches:
		ds.Branches = gen.GenerateBranches(s.config.Branches)
		return len(ds.Branches), nil
	case TableEmployees:
		ds.Employees, err = gen.GenerateEmployees(s.config.Employees)
		return len(ds.Employees), err
	case TableManagement:
		ds.Management = gen.GenerateManagement(ds.Employees, s.config.Managers)
		return len(ds.Management), nil
	case TableAccounts:
		ds.Accounts = gen.GenerateAccounts(ds.Customers)
		return len(ds.Accounts), nil
	case TableTransactions:
		ds.Transactions = gen.GenerateTransactions(ds.Accounts, s.config.Transactions)
		return len(ds.Transactions), nil
	case TableLoans:
		ds.Loans = gen.GenerateLoans(ds.Customers, s.config.Loans)
		return len(ds.Loans), nil
	case TablePayments:
		ds.Payments = gen.GeneratePayments(ds.Loans, s.config.MaxPaymentsPerLoan)
		return len(ds.Payments), nil
	default:
		return 0, fmt.Errorf("no generator registered for table %s", table)
	}
}
