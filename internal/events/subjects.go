package events

const (
	StreamName   = "CREDITVISION_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAssessmentCompleted(id string) string { return "creditvision.assessment." + id + ".completed" }
func SubjectAssessmentRejected(id string) string  { return "creditvision.assessment." + id + ".rejected" }
func SubjectDocumentExtracted(id string) string   { return "creditvision.document." + id + ".extracted" }
func SubjectDocumentFailed(id string) string      { return "creditvision.document." + id + ".failed" }
