package enableriface

import "github.com/Optum/guardduty-enabler/pkg/enabler"

//go:generate mockery -name Servicer

// Servicer runs the enabler
type Servicer interface {
	Enable(input *enabler.EnableInput) (*enabler.Report, error)
}
