package seeder

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// SeedConfig holds the row counts of one generation run.
type SeedConfig struct {
	Customers          int
	Employees          int
	Branches           int
	Managers           int
	Transactions       int
	Loans              int
	MaxPaymentsPerLoan int
	Seed               int64 // 0 seeds from the clock
}

type Customer struct {
	CustomerID       int
	FirstName        string
	LastName         string
	DateOfBirth      civil.Date
	Gender           string
	Address          string
	City             string
	State            string
	ZipCode          string
	PhoneNumber      string
	Email            string
	Nationality      string
	IDType           string
	IDNumber         string
	RegistrationDate civil.Date
}

type Employee struct {
	EmployeeID  int
	FirstName   string
	LastName    string
	DateOfBirth civil.Date
	Gender      string
	Address     string
	PhoneNumber string
	Email       string
	Position    string
	Department  string
	HireDate    civil.Date
	Salary      decimal.Decimal
}

type Branch struct {
	BranchID    int
	BranchName  string
	Address     string
	City        string
	State       string
	ZipCode     string
	PhoneNumber string
}

type Management struct {
	ManagerID  int
	EmployeeID int
	Title      string
	StartDate  civil.Date
	EndDate    *civil.Date // nil while still serving
}

type Account struct {
	AccountID   int
	CustomerID  int
	AccountType string
	Balance     decimal.Decimal
	Currency    string
	OpeningDate civil.Date
	Status      string
}

type Transaction struct {
	TransactionID      int
	AccountID          int
	TransactionType    string
	Amount             decimal.Decimal
	TransactionDate    time.Time
	Description        string
	Status             string
	RecipientAccountID *int
}

type Loan struct {
	LoanID       int
	CustomerID   int
	LoanType     string
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	TermMonths   int
	StartDate    civil.Date
	EndDate      civil.Date
	Status       string
}

type Payment struct {
	PaymentID     int
	LoanID        int
	PaymentDate   civil.Date
	Amount        decimal.Decimal
	PrincipalPaid decimal.Decimal
	InterestPaid  decimal.Decimal
}
