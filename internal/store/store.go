package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/creditvision/riskd/internal/borrower"
)

// Assessment is one recorded prediction outcome. History is an optional
// dashboard feature; scoring itself never reads it.
type Assessment struct {
	ID                 uuid.UUID       `json:"id"`
	Input              borrower.Record `json:"input"`
	DefaultProbability float64         `json:"defaultProbability"`
	RiskLevel          string          `json:"riskLevel"`
	ApprovalStatus     string          `json:"approvalStatus"`
	SuggestedRate      float64         `json:"suggestedRate"`
	Confidence         float64         `json:"confidence"`
	Source             string          `json:"source"` // form, document, batch
	CreatedAt          time.Time       `json:"createdAt"`
}

// Assessment sources.
const (
	SourceForm     = "form"
	SourceDocument = "document"
	SourceBatch    = "batch"
)

// Store persists assessment history.
type Store interface {
	RecordAssessment(ctx context.Context, a *Assessment) error
	ListAssessments(ctx context.Context, limit int) ([]*Assessment, error)
	Close() error
}
