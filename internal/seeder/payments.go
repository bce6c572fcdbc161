package seeder

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// GeneratePayments produces the repayment schedule of every loan. Paid-off
// loans get their full term; others get 1..maxPerLoan payments. A schedule
// stops at the first payment dated after today. Payment ids are global across
// loans in loan order.
func (g *Generator) GeneratePayments(loans []Loan, maxPerLoan int) []Payment {
	today := g.Today()
	var payments []Payment

	for _, loan := range loans {
		n := g.paymentCount(loan, maxPerLoan)
		if n == 0 {
			continue
		}

		base := monthlyInstallment(loan)
		for j := 0; j < n; j++ {
			date := loan.StartDate.AddDays(j*daysPerMonth + g.rand.Intn(paymentJitterMax+1))
			if date.After(today) {
				break
			}

			amount := base.Mul(decimal.NewFromFloat(g.faker.Float(paymentSpreadMin, paymentSpreadMax))).Round(2)
			principal := amount.Mul(decimal.NewFromFloat(g.faker.Float(principalMin, principalMax))).Round(2)

			payments = append(payments, Payment{
				PaymentID:     len(payments) + 1,
				LoanID:        loan.LoanID,
				PaymentDate:   date,
				Amount:        amount,
				PrincipalPaid: principal,
				InterestPaid:  amount.Sub(principal),
			})
		}
	}
	return payments
}

func (g *Generator) paymentCount(loan Loan, maxPerLoan int) int {
	if loan.Status == LoanPaidOff {
		return loan.TermMonths
	}
	if maxPerLoan < 1 {
		return 0
	}
	return 1 + g.rand.Intn(maxPerLoan)
}

// monthlyInstallment approximates one month's due as straight-line principal
// plus a flat month of interest on the full amount.
func monthlyInstallment(loan Loan) decimal.Decimal {
	if loan.TermMonths <= 0 {
		return decimal.Zero
	}
	principal := loan.Amount.Div(decimal.NewFromInt(int64(loan.TermMonths)))
	interest := loan.Amount.Mul(loan.InterestRate).Div(twelve)
	return principal.Add(interest)
}
