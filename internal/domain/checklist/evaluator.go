package checklist

// gatingItems is the curated subset of critical items whose failure
// alone forces rejection. Deliberately narrower than the critical tier:
// the pass/fail gate stays conservative and auditable while lesser
// defects surface through alerts instead.
var gatingItems = []string{
	"documentation.soat",
	"documentation.roadworthiness",
	"documentation.driverLicense",
	"exterior.brakeLights",
	"exterior.tireCondition",
	"interior.brakes",
	"interior.steering",
	"safety.firstAidKit",
	"safety.fireExtinguisher",
}

// Evaluator decides whether a completed checklist is approved or
// rejected. Pure and deterministic; it never fails.
type Evaluator struct {
	gating []string
}

// NewEvaluator creates an evaluator with the standard gating list.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithGating(gatingItems)
}

// NewEvaluatorWithGating creates an evaluator with an explicit gating
// list. Intended for tests.
func NewEvaluatorWithGating(gating []string) *Evaluator {
	return &Evaluator{gating: append([]string(nil), gating...)}
}

// Evaluate returns approved iff every gating item answered good or
// not-applicable. A missing answer to a gating item counts as bad: an
// unanswered safety-critical question must never default to approved.
func (e *Evaluator) Evaluate(sections Sections) Verdict {
	for _, key := range e.gating {
		r, ok := sections.Response(key)
		if !ok {
			return VerdictRejected
		}
		if r != ResponseGood && r != ResponseNotApplicable {
			return VerdictRejected
		}
	}
	return VerdictApproved
}

// GatingItems returns a copy of the evaluator's gating list.
func (e *Evaluator) GatingItems() []string {
	return append([]string(nil), e.gating...)
}
