package metrics

import (
	"principal-passwd/internal/app/ports"
)

// InstrumentedManager decorates a PasswordManager, reporting every encode
// and check outcome to an OpMetrics sink. Match is left unmeasured: it is a
// cheap pure predicate called in a loop by registry dispatch.
type InstrumentedManager struct {
	scheme  string
	inner   ports.PasswordManager
	metrics ports.OpMetrics
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*InstrumentedManager)(nil)

func NewInstrumentedManager(scheme string, inner ports.PasswordManager, metrics ports.OpMetrics) *InstrumentedManager {
	return &InstrumentedManager{scheme: scheme, inner: inner, metrics: metrics}
}

func (m *InstrumentedManager) Encode(password string, salt []byte) (string, error) {
	op := NewSchemeOp(OpEncode, m.scheme)
	encoded, err := m.inner.Encode(password, salt)
	if err != nil {
		m.metrics.OnOpDone(op.Done(ports.MOResultError))
		return "", err
	}
	m.metrics.OnOpDone(op.Done(ports.MOResultAccepted))
	return encoded, nil
}

func (m *InstrumentedManager) Check(encoded, password string) bool {
	op := NewSchemeOp(OpCheck, m.scheme)
	ok := m.inner.Check(encoded, password)
	if ok {
		m.metrics.OnOpDone(op.Done(ports.MOResultAccepted))
	} else {
		m.metrics.OnOpDone(op.Done(ports.MOResultRejected))
	}
	return ok
}

func (m *InstrumentedManager) Match(encoded string) bool {
	return m.inner.Match(encoded)
}
