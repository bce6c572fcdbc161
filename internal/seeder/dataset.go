package seeder

import (
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/Rana718/bankseed/internal/types"
	"github.com/shopspring/decimal"
)

// Table names double as the stem of each output file (<name>.csv).
const (
	TableCustomers    = "customers"
	TableEmployees    = "employees"
	TableManagement   = "management"
	TableBranches     = "branches"
	TableAccounts     = "accounts"
	TableTransactions = "transactions"
	TableLoans        = "loans"
	TablePayments     = "payments"
)

var (
	customerColumns = []string{
		"customer_id", "first_name", "last_name", "date_of_birth", "gender", "address", "city", "state",
		"zip_code", "phone_number", "email", "nationality", "id_type", "id_number", "registration_date",
	}
	employeeColumns = []string{
		"employee_id", "first_name", "last_name", "date_of_birth", "gender", "address", "phone_number",
		"email", "position", "department", "hire_date", "salary",
	}
	managementColumns  = []string{"manager_id", "employee_id", "title", "start_date", "end_date"}
	branchColumns      = []string{"branch_id", "branch_name", "address", "city", "state", "zip_code", "phone_number"}
	accountColumns     = []string{"account_id", "customer_id", "account_type", "balance", "currency", "opening_date", "status"}
	transactionColumns = []string{
		"transaction_id", "account_id", "transaction_type", "amount", "transaction_date", "description",
		"status", "recipient_account_id",
	}
	loanColumns = []string{
		"loan_id", "customer_id", "loan_type", "amount", "interest_rate", "term_months", "start_date",
		"end_date", "status",
	}
	paymentColumns = []string{"payment_id", "loan_id", "payment_date", "amount", "principal_paid", "interest_paid"}
)

// Dataset is the output of one generation run.
type Dataset struct {
	RunID        string
	Customers    []Customer
	Employees    []Employee
	Management   []Management
	Branches     []Branch
	Accounts     []Account
	Transactions []Transaction
	Loans        []Loan
	Payments     []Payment
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalDate(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func optionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return itoa(*i)
}

// Tables renders every entity list as a text table in a fixed order.
func (d *Dataset) Tables() []*types.Table {
	return []*types.Table{
		d.CustomersTable(),
		d.EmployeesTable(),
		d.ManagementTable(),
		d.BranchesTable(),
		d.AccountsTable(),
		d.TransactionsTable(),
		d.LoansTable(),
		d.PaymentsTable(),
	}
}

func (d *Dataset) CustomersTable() *types.Table {
	t := types.NewTable(TableCustomers, customerColumns...)
	for _, c := range d.Customers {
		t.AddRow(itoa(c.CustomerID), c.FirstName, c.LastName, c.DateOfBirth.String(), c.Gender, c.Address,
			c.City, c.State, c.ZipCode, c.PhoneNumber, c.Email, c.Nationality, c.IDType, c.IDNumber,
			c.RegistrationDate.String())
	}
	return t
}

func (d *Dataset) EmployeesTable() *types.Table {
	t := types.NewTable(TableEmployees, employeeColumns...)
	for _, e := range d.Employees {
		t.AddRow(itoa(e.EmployeeID), e.FirstName, e.LastName, e.DateOfBirth.String(), e.Gender, e.Address,
			e.PhoneNumber, e.Email, e.Position, e.Department, e.HireDate.String(), money(e.Salary))
	}
	return t
}

func (d *Dataset) ManagementTable() *types.Table {
	t := types.NewTable(TableManagement, managementColumns...)
	for _, m := range d.Management {
		t.AddRow(itoa(m.ManagerID), itoa(m.EmployeeID), m.Title, m.StartDate.String(), optionalDate(m.EndDate))
	}
	return t
}

func (d *Dataset) BranchesTable() *types.Table {
	t := types.NewTable(TableBranches, branchColumns...)
	for _, b := range d.Branches {
		t.AddRow(itoa(b.BranchID), b.BranchName, b.Address, b.City, b.State, b.ZipCode, b.PhoneNumber)
	}
	return t
}

func (d *Dataset) AccountsTable() *types.Table {
	t := types.NewTable(TableAccounts, accountColumns...)
	for _, a := range d.Accounts {
		t.AddRow(itoa(a.AccountID), itoa(a.CustomerID), a.AccountType, money(a.Balance), a.Currency,
			a.OpeningDate.String(), a.Status)
	}
	return t
}

func (d *Dataset) TransactionsTable() *types.Table {
	t := types.NewTable(TableTransactions, transactionColumns...)
	for _, tx := range d.Transactions {
		t.AddRow(itoa(tx.TransactionID), itoa(tx.AccountID), tx.TransactionType, money(tx.Amount),
			transactionTimestamp(tx.TransactionDate), tx.Description, tx.Status, optionalInt(tx.RecipientAccountID))
	}
	return t
}

func (d *Dataset) LoansTable() *types.Table {
	t := types.NewTable(TableLoans, loanColumns...)
	for _, l := range d.Loans {
		t.AddRow(itoa(l.LoanID), itoa(l.CustomerID), l.LoanType, money(l.Amount), l.InterestRate.StringFixed(4),
			itoa(l.TermMonths), l.StartDate.String(), l.EndDate.String(), l.Status)
	}
	return t
}

func (d *Dataset) PaymentsTable() *types.Table {
	t := types.NewTable(TablePayments, paymentColumns...)
	for _, p := range d.Payments {
		t.AddRow(itoa(p.PaymentID), itoa(p.LoanID), p.PaymentDate.String(), money(p.Amount),
			money(p.PrincipalPaid), money(p.InterestPaid))
	}
	return t
}
