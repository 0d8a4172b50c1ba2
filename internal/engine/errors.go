package engine

import "fmt"

// ComputationError reports a numeric failure inside a transform. The pipeline
// formulas cannot produce NaN or infinity for validated inputs, so this only
// surfaces from defensive recovery paths.
type ComputationError struct {
	Op     string
	Detail string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Detail)
}
