package ports

type MeasuredOpLabel string
type MeasuredOpResult string

const (
	MOLabelOp     MeasuredOpLabel = "op"
	MOLabelScheme MeasuredOpLabel = "scheme"
	MOLabelResult MeasuredOpLabel = "result"

	MOResultAccepted MeasuredOpResult = "accepted"
	MOResultRejected MeasuredOpResult = "rejected"
	MOResultError    MeasuredOpResult = "error"
)

type MeasuredOp interface {
	Done(result MeasuredOpResult) MeasuredOp
	Duration() float64
	Labels() map[MeasuredOpLabel]string
}

type OpMetrics interface {
	OnOpDone(op MeasuredOp)
}
