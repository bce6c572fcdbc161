package seeder

import (
	"sort"
	"time"
)

// GenerateAccounts opens 1-3 accounts per customer. Account ids are global and
// assigned in ascending customer_id order.
func (g *Generator) GenerateAccounts(customers []Customer) []Account {
	ordered := make([]Customer, len(customers))
	copy(ordered, customers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CustomerID < ordered[j].CustomerID
	})

	today := g.Today()
	accounts := make([]Account, 0, len(ordered)*2)

	for _, customer := range ordered {
		n := g.faker.IntBetween(1, maxAccountsPerCustomer)
		for j := 0; j < n; j++ {
			accounts = append(accounts, Account{
				AccountID:   len(accounts) + 1,
				CustomerID:  customer.CustomerID,
				AccountType: g.faker.Choice(accountTypes),
				Balance:     g.faker.Decimal(balanceMin, balanceMax, 2),
				Currency:    g.faker.Choice(currencies),
				OpeningDate: g.faker.DateBetween(customer.RegistrationDate, today),
				Status:      AccountActive,
			})
		}
	}
	return accounts
}

// GenerateTransactions samples source accounts with replacement. Transfers get
// a recipient drawn from every other account; other types have none.
func (g *Generator) GenerateTransactions(accounts []Account, count int) []Transaction {
	if len(accounts) == 0 || count <= 0 {
		return nil
	}

	transactions := make([]Transaction, 0, count)
	for i := 1; i <= count; i++ {
		src := g.rand.Intn(len(accounts))
		account := accounts[src]
		txType := g.faker.Choice(transactionTypes)

		opened := account.OpeningDate.In(g.now.Location())
		tx := Transaction{
			TransactionID:   i,
			AccountID:       account.AccountID,
			TransactionType: txType,
			Amount:          g.faker.Decimal(transactionAmountMin, transactionAmountMax, 2),
			TransactionDate: g.faker.DateTimeBetween(opened, g.now),
			Description:     g.faker.Sentence(descriptionWords),
			Status:          g.faker.Choice(transactionStatuses),
		}

		if txType == TransactionTransfer && len(accounts) > 1 {
			dst := g.rand.Intn(len(accounts) - 1)
			if dst >= src {
				dst++
			}
			recipient := accounts[dst].AccountID
			tx.RecipientAccountID = &recipient
		}

		transactions = append(transactions, tx)
	}
	return transactions
}

func transactionTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
