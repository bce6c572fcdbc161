package seeder

import "fmt"

// GenerateCustomers produces count customers with ids 1..count. id_number is
// unique within the run; running out of fresh values is fatal.
func (g *Generator) GenerateCustomers(count int) ([]Customer, error) {
	customers := make([]Customer, 0, count)
	from, to := g.trailingWindow(customerHistoryYears)

	for i := 1; i <= count; i++ {
		gender := g.faker.Choice(genders)
		idNumber, err := g.unique.Next("customers.id_number", g.faker.NationalID)
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", i, err)
		}

		customers = append(customers, Customer{
			CustomerID:       i,
			FirstName:        g.faker.FirstName(gender),
			LastName:         g.faker.LastName(),
			DateOfBirth:      g.faker.DateOfBirth(g.Today(), customerMinAge, customerMaxAge),
			Gender:           gender,
			Address:          g.faker.Address(),
			City:             g.faker.City(),
			State:            g.faker.State(),
			ZipCode:          g.faker.Postcode(),
			PhoneNumber:      g.faker.PhoneNumber(),
			Email:            g.faker.Email(),
			Nationality:      g.faker.Country(),
			IDType:           g.faker.Choice(idTypes),
			IDNumber:         idNumber,
			RegistrationDate: g.faker.DateBetween(from, to),
		})
	}
	return customers, nil
}

func (g *Generator) GenerateBranches(count int) []Branch {
	branches := make([]Branch, 0, count)
	for i := 1; i <= count; i++ {
		branches = append(branches, Branch{
			BranchID:    i,
			BranchName:  fmt.Sprintf("الفرع رقم %d", i),
			Address:     g.faker.Address(),
			City:        g.faker.City(),
			State:       g.faker.State(),
			ZipCode:     g.faker.Postcode(),
			PhoneNumber: g.faker.PhoneNumber(),
		})
	}
	return branches
}
