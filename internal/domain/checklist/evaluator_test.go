package checklist

import "testing"

// cleanSections builds a full checklist with every catalog item answered
// good.
func cleanSections() Sections {
	s := make(Sections, len(Catalog))
	for _, spec := range Catalog {
		answers := make(Section, len(spec.Items))
		for _, item := range spec.Items {
			answers[item] = ResponseGood
		}
		s[spec.Key] = answers
	}
	return s
}

func TestEvaluator_Evaluate(t *testing.T) {
	e := NewEvaluator()

	tests := []struct {
		name   string
		mutate func(Sections)
		want   Verdict
	}{
		{
			name:   "all items good",
			mutate: func(s Sections) {},
			want:   VerdictApproved,
		},
		{
			name: "gating item bad",
			mutate: func(s Sections) {
				s[SectionInterior]["brakes"] = ResponseBad
			},
			want: VerdictRejected,
		},
		{
			name: "gating document bad",
			mutate: func(s Sections) {
				s[SectionDocumentation]["soat"] = ResponseBad
			},
			want: VerdictRejected,
		},
		{
			name: "non-gating item bad",
			mutate: func(s Sections) {
				s[SectionExterior]["wipers"] = ResponseBad
				s[SectionFluids]["coolant"] = ResponseBad
			},
			want: VerdictApproved,
		},
		{
			name: "gating item not applicable",
			mutate: func(s Sections) {
				s[SectionSafety]["fireExtinguisher"] = ResponseNotApplicable
			},
			want: VerdictApproved,
		},
		{
			name: "gating item missing",
			mutate: func(s Sections) {
				delete(s[SectionInterior], "steering")
			},
			want: VerdictRejected,
		},
		{
			name: "gating section missing",
			mutate: func(s Sections) {
				delete(s, SectionSafety)
			},
			want: VerdictRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := cleanSections()
			tt.mutate(sections)

			if got := e.Evaluate(sections); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluator_EvaluateEmptyChecklist(t *testing.T) {
	e := NewEvaluator()

	if got := e.Evaluate(Sections{}); got != VerdictRejected {
		t.Errorf("Evaluate() = %v, want %v", got, VerdictRejected)
	}
}

func TestEvaluator_CustomGating(t *testing.T) {
	e := NewEvaluatorWithGating([]string{"exterior.wipers"})

	sections := cleanSections()
	sections[SectionInterior]["brakes"] = ResponseBad

	// Only the custom gating list decides the verdict.
	if got := e.Evaluate(sections); got != VerdictApproved {
		t.Errorf("Evaluate() = %v, want %v", got, VerdictApproved)
	}

	sections[SectionExterior]["wipers"] = ResponseBad
	if got := e.Evaluate(sections); got != VerdictRejected {
		t.Errorf("Evaluate() = %v, want %v", got, VerdictRejected)
	}
}

func TestSections_Response(t *testing.T) {
	sections := Sections{
		"exterior": Section{"brakeLights": ResponseBad},
	}

	tests := []struct {
		name   string
		key    string
		want   Response
		wantOK bool
	}{
		{name: "existing item", key: "exterior.brakeLights", want: ResponseBad, wantOK: true},
		{name: "missing item", key: "exterior.mirrors", wantOK: false},
		{name: "missing section", key: "interior.brakes", wantOK: false},
		{name: "key without dot", key: "brakeLights", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sections.Response(tt.key)
			if ok != tt.wantOK {
				t.Errorf("Response() ok = %v, want %v", ok, tt.wantOK)
				return
			}
			if ok && got != tt.want {
				t.Errorf("Response() = %v, want %v", got, tt.want)
			}
		})
	}
}
