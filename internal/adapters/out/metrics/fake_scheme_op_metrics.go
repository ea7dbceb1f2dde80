package metrics

import (
	"log"

	"principal-passwd/internal/app/ports"
)

type FakeOpMetrics struct {
}

// Enforce compile-time conformance to the interface
var _ ports.OpMetrics = (*FakeOpMetrics)(nil)

// OnOpDone logs the labels instead of recording them.
func (m *FakeOpMetrics) OnOpDone(op ports.MeasuredOp) {
	mol := op.Labels()
	log.Printf("FakeOpMetrics.OnOpDone: %v", mol)
}
