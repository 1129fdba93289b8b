package patient

import "github.com/samber/lo"

var abnormalFollowUpTests = []string{
	"Blood Test (CBC)",
	"HbA1c Test",
	"Fasting Blood Sugar",
	"Post-meal Sugar Test",
	"ECG",
	"Kidney Function Test",
}

// RecommendedTests returns the follow-up panel for a record with any
// abnormal lab result, or nil.
func RecommendedTests(r Record) []string {
	abnormal := lo.SomeBy([]LabResult{r.A1C, r.Glucose}, func(l LabResult) bool {
		return l == LabAbnormal
	})
	if !abnormal {
		return nil
	}
	return append([]string(nil), abnormalFollowUpTests...)
}
