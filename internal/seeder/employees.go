package seeder

import "fmt"

// GenerateEmployees produces count employees with ids 1..count and unique emails.
func (g *Generator) GenerateEmployees(count int) ([]Employee, error) {
	employees := make([]Employee, 0, count)
	from, to := g.trailingWindow(employeeHistoryYears)

	for i := 1; i <= count; i++ {
		gender := g.faker.Choice(genders)
		email, err := g.unique.Next("employees.email", g.faker.Email)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}

		employees = append(employees, Employee{
			EmployeeID:  i,
			FirstName:   g.faker.FirstName(gender),
			LastName:    g.faker.LastName(),
			DateOfBirth: g.faker.DateOfBirth(g.Today(), employeeMinAge, employeeMaxAge),
			Gender:      gender,
			Address:     g.faker.Address(),
			PhoneNumber: g.faker.PhoneNumber(),
			Email:       email,
			Position:    g.faker.Choice(positions),
			Department:  g.faker.Choice(departments),
			HireDate:    g.faker.DateBetween(from, to),
			Salary:      g.faker.Decimal(salaryMin, salaryMax, 2),
		})
	}
	return employees, nil
}

// GenerateManagement appoints min(size, len(employees)) distinct employees,
// numbered 1..k in sample order. About one in five appointments has ended.
func (g *Generator) GenerateManagement(employees []Employee, size int) []Management {
	k := min(size, len(employees))
	if k <= 0 {
		return nil
	}

	today := g.Today()
	picked := g.rand.Perm(len(employees))[:k]
	management := make([]Management, 0, k)

	for i, idx := range picked {
		emp := employees[idx]
		start := g.faker.DateBetween(emp.HireDate, today)
		m := Management{
			ManagerID:  i + 1,
			EmployeeID: emp.EmployeeID,
			Title:      g.faker.Choice(managementTitles),
			StartDate:  start,
		}
		if g.faker.Chance(managementEndChance) {
			end := g.faker.DateBetween(start, today)
			m.EndDate = &end
		}
		management = append(management, m)
	}
	return management
}
