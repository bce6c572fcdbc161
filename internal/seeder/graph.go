package seeder

import "fmt"

// DependencyGraph orders generation steps so that every table is produced
// after the tables whose keys it references.
type DependencyGraph struct {
	deps  map[string][]string
	names []string // registration order, keeps the result stable
	order []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string, dependsOn ...string) {
	if _, exists := g.deps[name]; !exists {
		g.names = append(g.names, name)
	}
	g.deps[name] = dependsOn
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		deps, known := g.deps[tableName]
		if !known {
			return fmt.Errorf("table %s is referenced but never registered", tableName)
		}

		temp[tableName] = true
		for _, dep := range deps {
			if dep == tableName {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if err := visit(tableName); err != nil {
			return nil, err
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
