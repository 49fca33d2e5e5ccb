package regioniface

//go:generate mockery -name Resolver

// Resolver turns requested region names into the regions of a run
type Resolver interface {
	Resolve(requested []string) ([]string, error)
	Available() ([]string, error)
}
