package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testConfig() SeedConfig {
	return SeedConfig{
		Customers:          100,
		Employees:          20,
		Branches:           5,
		Managers:           10,
		Transactions:       1000,
		Loans:              200,
		MaxPaymentsPerLoan: 20,
		Seed:               42,
	}
}

func runSeeder(t *testing.T, cfg SeedConfig) *Dataset {
	t.Helper()
	ds, err := New(cfg, testLogger()).
		WithClock(func() time.Time { return fixedNow }).
		Run(context.Background())
	require.NoError(t, err)
	return ds
}

func TestRunCounts(t *testing.T) {
	ds := runSeeder(t, testConfig())

	assert.Len(t, ds.Customers, 100)
	assert.Len(t, ds.Employees, 20)
	assert.Len(t, ds.Branches, 5)
	assert.Len(t, ds.Management, 10)
	assert.Len(t, ds.Transactions, 1000)
	assert.Len(t, ds.Loans, 200)
	assert.GreaterOrEqual(t, len(ds.Accounts), 100)
	assert.LessOrEqual(t, len(ds.Accounts), 300)
	assert.NotEmpty(t, ds.RunID)
}

func TestRunAtDefaultScale(t *testing.T) {
	cfg := SeedConfig{
		Customers:          500,
		Employees:          50,
		Branches:           10,
		Managers:           10,
		Transactions:       10000,
		Loans:              200,
		MaxPaymentsPerLoan: 20,
		Seed:               7,
	}
	ds := runSeeder(t, cfg)
	today := civil.DateOf(fixedNow)

	assert.GreaterOrEqual(t, len(ds.Accounts), 500)
	assert.LessOrEqual(t, len(ds.Accounts), 1500)

	customerIDs := map[int]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.CustomerID] = true
	}
	for _, a := range ds.Accounts {
		assert.True(t, customerIDs[a.CustomerID], "account %d has unknown customer %d", a.AccountID, a.CustomerID)
	}

	perLoan := map[int]int{}
	for _, p := range ds.Payments {
		perLoan[p.LoanID]++
	}
	require.Len(t, ds.Loans, 200)
	for _, loan := range ds.Loans {
		n := perLoan[loan.LoanID]
		if loan.Status != LoanPaidOff {
			assert.LessOrEqual(t, n, cfg.MaxPaymentsPerLoan)
			continue
		}
		assert.LessOrEqual(t, n, loan.TermMonths)
		if n < loan.TermMonths {
			// the next scheduled date fell after today, so even its latest possible day does
			assert.True(t, loan.StartDate.AddDays(n*daysPerMonth+paymentJitterMax).After(today),
				"loan %d stopped at %d of %d payments before today", loan.LoanID, n, loan.TermMonths)
		}
	}
}

func TestRunIsReproducible(t *testing.T) {
	a := runSeeder(t, testConfig())
	b := runSeeder(t, testConfig())

	assert.NotEqual(t, a.RunID, b.RunID)
	for i, table := range a.Tables() {
		assert.Equal(t, table.Rows, b.Tables()[i].Rows, "table %s differs", table.Name)
	}
}

func TestCustomers(t *testing.T) {
	ds := runSeeder(t, testConfig())
	today := civil.DateOf(fixedNow)
	tenYearsAgo := yearsBefore(today, 10)

	ids := map[string]bool{}
	for i, c := range ds.Customers {
		assert.Equal(t, i+1, c.CustomerID)
		assert.Contains(t, genders, c.Gender)
		assert.Contains(t, idTypes, c.IDType)

		age := ageOn(c.DateOfBirth, today)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 70)

		assert.False(t, c.RegistrationDate.Before(tenYearsAgo))
		assert.False(t, c.RegistrationDate.After(today))

		assert.False(t, ids[c.IDNumber], "duplicate id_number %s", c.IDNumber)
		ids[c.IDNumber] = true
	}
}

func TestEmployeesAndManagement(t *testing.T) {
	ds := runSeeder(t, testConfig())
	today := civil.DateOf(fixedNow)

	emails := map[string]bool{}
	byID := map[int]Employee{}
	for i, e := range ds.Employees {
		assert.Equal(t, i+1, e.EmployeeID)
		age := ageOn(e.DateOfBirth, today)
		assert.GreaterOrEqual(t, age, 22)
		assert.LessOrEqual(t, age, 60)
		assert.False(t, e.HireDate.Before(yearsBefore(today, 15)))
		assert.True(t, e.Salary.InexactFloat64() >= 4000 && e.Salary.InexactFloat64() <= 25000)
		assert.False(t, emails[e.Email], "duplicate email %s", e.Email)
		emails[e.Email] = true
		byID[e.EmployeeID] = e
	}

	appointed := map[int]bool{}
	for i, m := range ds.Management {
		assert.Equal(t, i+1, m.ManagerID)
		emp, ok := byID[m.EmployeeID]
		require.True(t, ok, "manager references unknown employee %d", m.EmployeeID)
		assert.False(t, appointed[m.EmployeeID], "employee %d appointed twice", m.EmployeeID)
		appointed[m.EmployeeID] = true

		assert.False(t, m.StartDate.Before(emp.HireDate))
		assert.False(t, m.StartDate.After(today))
		if m.EndDate != nil {
			assert.False(t, m.EndDate.Before(m.StartDate))
			assert.False(t, m.EndDate.After(today))
		}
	}
}

func TestManagementCappedByEmployees(t *testing.T) {
	cfg := testConfig()
	cfg.Employees = 3
	ds := runSeeder(t, cfg)
	assert.Len(t, ds.Management, 3)

	cfg.Employees = 0
	ds = runSeeder(t, cfg)
	assert.Empty(t, ds.Management)
}

func TestAccounts(t *testing.T) {
	ds := runSeeder(t, testConfig())
	today := civil.DateOf(fixedNow)

	customers := map[int]Customer{}
	for _, c := range ds.Customers {
		customers[c.CustomerID] = c
	}

	perCustomer := map[int]int{}
	lastCustomer := 0
	for i, a := range ds.Accounts {
		assert.Equal(t, i+1, a.AccountID)
		assert.GreaterOrEqual(t, a.CustomerID, lastCustomer, "accounts follow ascending customer order")
		lastCustomer = a.CustomerID

		c, ok := customers[a.CustomerID]
		require.True(t, ok)
		perCustomer[a.CustomerID]++

		assert.False(t, a.OpeningDate.Before(c.RegistrationDate))
		assert.False(t, a.OpeningDate.After(today))
		assert.Equal(t, AccountActive, a.Status)
		assert.Contains(t, currencies, a.Currency)
	}

	assert.Len(t, perCustomer, len(ds.Customers), "every customer has an account")
	for id, n := range perCustomer {
		assert.True(t, n >= 1 && n <= 3, "customer %d has %d accounts", id, n)
	}
}

func TestTransactions(t *testing.T) {
	ds := runSeeder(t, testConfig())

	accounts := map[int]Account{}
	for _, a := range ds.Accounts {
		accounts[a.AccountID] = a
	}

	transfers := 0
	for i, tx := range ds.Transactions {
		assert.Equal(t, i+1, tx.TransactionID)
		src, ok := accounts[tx.AccountID]
		require.True(t, ok)

		assert.False(t, tx.TransactionDate.Before(src.OpeningDate.In(time.UTC)))
		assert.False(t, tx.TransactionDate.After(fixedNow))
		assert.True(t, tx.Amount.InexactFloat64() >= 10 && tx.Amount.InexactFloat64() <= 5000)

		if tx.TransactionType != TransactionTransfer {
			assert.Nil(t, tx.RecipientAccountID, "only transfers have a recipient")
			continue
		}
		transfers++
		require.NotNil(t, tx.RecipientAccountID)
		assert.NotEqual(t, tx.AccountID, *tx.RecipientAccountID)
		_, ok = accounts[*tx.RecipientAccountID]
		assert.True(t, ok)
	}
	assert.Positive(t, transfers)
}

func TestTransferWithSingleAccount(t *testing.T) {
	g := NewGenerator(1, fixedNow)
	accounts := []Account{{AccountID: 1, CustomerID: 1, OpeningDate: civil.Date{Year: 2020, Month: 1, Day: 1}}}

	for _, tx := range g.GenerateTransactions(accounts, 200) {
		assert.Nil(t, tx.RecipientAccountID)
	}
}

func TestLoans(t *testing.T) {
	ds := runSeeder(t, testConfig())
	today := civil.DateOf(fixedNow)

	customers := map[int]Customer{}
	for _, c := range ds.Customers {
		customers[c.CustomerID] = c
	}

	for i, l := range ds.Loans {
		assert.Equal(t, i+1, l.LoanID)
		c, ok := customers[l.CustomerID]
		require.True(t, ok)

		assert.Contains(t, loanTerms, l.TermMonths)
		assert.Contains(t, loanStatuses, l.Status)
		assert.False(t, l.StartDate.Before(c.RegistrationDate))
		assert.False(t, l.StartDate.After(today))
		assert.Equal(t, l.TermMonths*30, l.EndDate.DaysSince(l.StartDate))
		assert.True(t, l.InterestRate.Equal(l.InterestRate.Round(4)))
	}
}

func TestPayments(t *testing.T) {
	cfg := testConfig()
	ds := runSeeder(t, cfg)
	today := civil.DateOf(fixedNow)

	loans := map[int]Loan{}
	for _, l := range ds.Loans {
		loans[l.LoanID] = l
	}

	perLoan := map[int]int{}
	lastLoan := 0
	for i, p := range ds.Payments {
		assert.Equal(t, i+1, p.PaymentID)
		assert.GreaterOrEqual(t, p.LoanID, lastLoan, "payment ids follow loan order")
		lastLoan = p.LoanID

		loan, ok := loans[p.LoanID]
		require.True(t, ok)
		perLoan[p.LoanID]++

		assert.False(t, p.PaymentDate.After(today))
		assert.False(t, p.PaymentDate.Before(loan.StartDate))
		assert.True(t, p.Amount.Equal(p.PrincipalPaid.Add(p.InterestPaid).Round(2)),
			"payment %d: %s != %s + %s", p.PaymentID, p.Amount, p.PrincipalPaid, p.InterestPaid)
		assert.True(t, p.PrincipalPaid.IsPositive())
	}

	for id, n := range perLoan {
		loan := loans[id]
		if loan.Status == LoanPaidOff {
			assert.LessOrEqual(t, n, loan.TermMonths)
		} else {
			assert.LessOrEqual(t, n, cfg.MaxPaymentsPerLoan)
		}
	}
}

func TestPaidOffLoanScheduleTruncatedAtToday(t *testing.T) {
	g := NewGenerator(3, fixedNow)
	today := g.Today()
	loan := Loan{
		LoanID:       1,
		Amount:       decimalFromString(t, "120000.00"),
		InterestRate: decimalFromString(t, "0.0600"),
		TermMonths:   24,
		StartDate:    today.AddDays(-100),
		Status:       LoanPaidOff,
	}

	payments := g.GeneratePayments([]Loan{loan}, 20)
	// at most one payment per elapsed 30-day period, plus the first
	assert.NotEmpty(t, payments)
	assert.LessOrEqual(t, len(payments), 4)
	for _, p := range payments {
		assert.False(t, p.PaymentDate.After(today))
	}

	old := loan
	old.StartDate = today.AddDays(-24*30 - 60)
	assert.Len(t, g.GeneratePayments([]Loan{old}, 20), 24)
}

func TestPaymentsWithZeroMax(t *testing.T) {
	g := NewGenerator(3, fixedNow)
	start := g.Today().AddDays(-2000)
	loans := []Loan{
		{LoanID: 1, Amount: decimalFromString(t, "1000"), InterestRate: decimalFromString(t, "0.05"), TermMonths: 12, StartDate: start, Status: LoanActive},
		{LoanID: 2, Amount: decimalFromString(t, "1000"), InterestRate: decimalFromString(t, "0.05"), TermMonths: 12, StartDate: start, Status: LoanPaidOff},
	}

	payments := g.GeneratePayments(loans, 0)
	require.Len(t, payments, 12)
	for _, p := range payments {
		assert.Equal(t, 2, p.LoanID)
	}
}

func TestMonthlyInstallment(t *testing.T) {
	loan := Loan{
		Amount:       decimalFromString(t, "12000"),
		InterestRate: decimalFromString(t, "0.12"),
		TermMonths:   12,
	}
	// 12000/12 + 12000*0.12/12
	assert.Equal(t, "1120.00", monthlyInstallment(loan).StringFixed(2))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(), testLogger()).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateEmployeesUniqueExhausted(t *testing.T) {
	g := NewGenerator(5, fixedNow)
	g.unique = NewUniqueRegistry(1)
	g.unique.seen["employees.email"] = map[string]struct{}{}
	for _, first := range latinFirstNames {
		for _, last := range latinLastNames {
			for _, domain := range freeEmailDomains {
				g.unique.seen["employees.email"][first+"."+last+"@"+domain] = struct{}{}
			}
		}
	}

	// with a single attempt per draw some collision is certain over many rows
	_, err := g.GenerateEmployees(5000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUniqueExhausted))
}

func TestTablesHeaders(t *testing.T) {
	ds := runSeeder(t, testConfig())
	tables := ds.Tables()
	require.Len(t, tables, 8)

	headers := map[string][]string{}
	for _, table := range tables {
		headers[table.Name] = table.Columns
		for _, row := range table.Rows {
			require.Len(t, row, len(table.Columns))
		}
	}

	assert.Equal(t, []string{
		"customer_id", "first_name", "last_name", "date_of_birth", "gender", "address", "city", "state",
		"zip_code", "phone_number", "email", "nationality", "id_type", "id_number", "registration_date",
	}, headers[TableCustomers])
	assert.Equal(t, []string{"payment_id", "loan_id", "payment_date", "amount", "principal_paid", "interest_paid"}, headers[TablePayments])
	assert.Equal(t, []string{
		"transaction_id", "account_id", "transaction_type", "amount", "transaction_date", "description",
		"status", "recipient_account_id",
	}, headers[TableTransactions])

	tx := ds.TransactionsTable()
	for i, row := range tx.Rows {
		_, err := time.Parse("2006-01-02 15:04:05", row[4])
		assert.NoError(t, err)
		if ds.Transactions[i].RecipientAccountID == nil {
			assert.Empty(t, row[7])
		}
	}
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
