package metrics

import (
	"time"

	"principal-passwd/internal/app/ports"
)

const (
	OpEncode = "encode"
	OpCheck  = "check"
)

type SchemeOp struct {
	start           time.Time
	Op              string
	Scheme          string
	Result          string
	DurationFloat64 float64
}

// Enforce compile-time conformance to the interface
var _ ports.MeasuredOp = (*SchemeOp)(nil)

func NewSchemeOp(op, scheme string) *SchemeOp {
	return &SchemeOp{
		start:  time.Now(),
		Op:     op,
		Scheme: scheme,
		Result: "unknown",
	}
}

func (o *SchemeOp) Done(result ports.MeasuredOpResult) ports.MeasuredOp {
	o.Result = string(result)
	o.DurationFloat64 = time.Since(o.start).Seconds()
	return o
}

func (o *SchemeOp) Duration() float64 {
	return o.DurationFloat64
}

func (o *SchemeOp) Labels() map[ports.MeasuredOpLabel]string {
	return map[ports.MeasuredOpLabel]string{
		ports.MOLabelOp:     o.Op,
		ports.MOLabelScheme: o.Scheme,
		ports.MOLabelResult: o.Result,
	}
}
