package patient

const (
	MinHospitalStayDays = 2
	MaxEmergencyVisits  = 3
)

type Rule int

const (
	RuleNone Rule = iota
	RuleShortStay
	RuleEmergencyVisits
	RuleNoMedication
	RuleNormalA1C
)

func (r Rule) String() string {
	switch r {
	case RuleShortStay:
		return "short_stay"
	case RuleEmergencyVisits:
		return "emergency_visits"
	case RuleNoMedication:
		return "no_medication"
	case RuleNormalA1C:
		return "normal_a1c"
	default:
		return "none"
	}
}

// Verdict is the outcome of Evaluate. Rule is RuleNone and Reason is empty
// when the patient is eligible.
type Verdict struct {
	Eliminated bool
	Rule       Rule
	Reason     string
}

func (v Verdict) Eligible() bool {
	return !v.Eliminated
}

type eliminationRule struct {
	rule    Rule
	reason  string
	matches func(Record) bool
}

// Order matters: the first matching rule decides the verdict.
var eliminationRules = []eliminationRule{
	{
		rule:    RuleShortStay,
		reason:  "Stay too short",
		matches: func(r Record) bool { return r.TimeInHospital < MinHospitalStayDays },
	},
	{
		rule:    RuleEmergencyVisits,
		reason:  "Too many emergency visits",
		matches: func(r Record) bool { return r.EmergencyVisits > MaxEmergencyVisits },
	},
	{
		rule:    RuleNoMedication,
		reason:  "Not on diabetes medication",
		matches: func(r Record) bool { return r.DiabetesMed == MedicationNo },
	},
	{
		rule:    RuleNormalA1C,
		reason:  "A1C is normal (low priority)",
		matches: func(r Record) bool { return r.A1C == LabNormal },
	},
}

// Evaluate applies the program's elimination rules to a populated record.
// Unknown lab values get no special treatment and never match RuleNormalA1C.
func Evaluate(r Record) Verdict {
	for _, er := range eliminationRules {
		if er.matches(r) {
			return Verdict{Eliminated: true, Rule: er.rule, Reason: er.reason}
		}
	}
	return Verdict{}
}

// Reasons lists the elimination reasons in rule order.
func Reasons() []string {
	reasons := make([]string, 0, len(eliminationRules))
	for _, er := range eliminationRules {
		reasons = append(reasons, er.reason)
	}
	return reasons
}
