package patient

// LabResult holds a lab value as entered. Outside strict mode any token is
// stored verbatim, so values other than the constants below can occur.
type LabResult string

const (
	LabNormal   LabResult = "Normal"
	LabAbnormal LabResult = "Abnormal"
	LabUnknown  LabResult = "Unknown"
)

// Lab describes one of the two lab reports asked for during intake.
type Lab struct {
	Name           string
	ReportName     string
	SuggestedTests []string
}

var (
	HbA1c = Lab{
		Name:           "HbA1c",
		ReportName:     "HbA1c test report",
		SuggestedTests: []string{"Fasting lab test for HbA1c"},
	}
	Glucose = Lab{
		Name:           "Glucose",
		ReportName:     "Blood Glucose report",
		SuggestedTests: []string{"Fasting Blood Sugar", "Post-meal Sugar Test"},
	}
)

// ReportedResults are the values a lab report can carry. Unknown is only set
// when no report exists.
var ReportedResults = []string{string(LabNormal), string(LabAbnormal)}

var MedicationAnswers = []string{MedicationYes, MedicationNo}
