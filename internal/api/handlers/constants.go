package handlers

import "github.com/Conceptual-Machines/magda-scales/internal/scales"

const (
	// Query defaults and limits
	defaultShift = scales.ShiftThirds
	maxExtra     = 64 // Maximum wrap-around letters per request
	maxShifts    = 16 // Maximum voices in a chords request
)
