package seeder

// GenerateLoans samples borrowers with replacement. end_date is start_date plus
// term_months*30 days, not a calendar month count.
func (g *Generator) GenerateLoans(customers []Customer, count int) []Loan {
	if len(customers) == 0 || count <= 0 {
		return nil
	}

	today := g.Today()
	loans := make([]Loan, 0, count)

	for i := 1; i <= count; i++ {
		customer := customers[g.rand.Intn(len(customers))]
		term := loanTerms[g.rand.Intn(len(loanTerms))]
		start := g.faker.DateBetween(customer.RegistrationDate, today)

		loans = append(loans, Loan{
			LoanID:       i,
			CustomerID:   customer.CustomerID,
			LoanType:     g.faker.Choice(loanTypes),
			Amount:       g.faker.Decimal(loanAmountMin, loanAmountMax, 2),
			InterestRate: g.faker.Decimal(loanRateMin, loanRateMax, 4),
			TermMonths:   term,
			StartDate:    start,
			EndDate:      start.AddDays(term * daysPerMonth),
			Status:       g.faker.Choice(loanStatuses),
		})
	}
	return loans
}
