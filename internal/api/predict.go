package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/creditvision/riskd/internal/borrower"
	"github.com/creditvision/riskd/internal/events"
	"github.com/creditvision/riskd/internal/risk"
	"github.com/creditvision/riskd/internal/store"
)

type PredictHandler struct {
	scorer *risk.Scorer
	store  store.Store
	events events.Client
	logger *slog.Logger
}

func NewPredictHandler(scorer *risk.Scorer, s store.Store, ev events.Client, logger *slog.Logger) *PredictHandler {
	return &PredictHandler{scorer: scorer, store: s, events: ev, logger: logger}
}

type PredictionResponse struct {
	AssessmentID       string              `json:"assessmentId"`
	DefaultProbability float64             `json:"defaultProbability"`
	RiskLevel          string              `json:"riskLevel"`
	ApprovalStatus     string              `json:"approvalStatus"`
	SuggestedRate      float64             `json:"suggestedRate"`
	Recommendation     string              `json:"recommendation"`
	Confidence         float64             `json:"confidence"`
	TopFactors         []risk.Factor       `json:"topFactors"`
	Contributions      []risk.Contribution `json:"contributions"`
}

func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if violations := borrower.Validate(rec); len(violations) > 0 {
		predictionRejectionsTotal.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":      "validation failed",
			"violations": violations,
		})
		return
	}

	a := h.scorer.Score(rec)
	id := uuid.New()

	resp := PredictionResponse{
		AssessmentID:       id.String(),
		DefaultProbability: a.DefaultProbability,
		RiskLevel:          a.RiskLevel,
		ApprovalStatus:     a.ApprovalStatus,
		SuggestedRate:      a.SuggestedRate,
		Recommendation:     a.Recommendation,
		Confidence:         risk.Confidence(rec),
		TopFactors:         a.TopFactors,
		Contributions:      a.Contributions,
	}

	if h.store != nil {
		record := &store.Assessment{
			ID:                 id,
			Input:              rec,
			DefaultProbability: a.DefaultProbability,
			RiskLevel:          a.RiskLevel,
			ApprovalStatus:     a.ApprovalStatus,
			SuggestedRate:      a.SuggestedRate,
			Confidence:         resp.Confidence,
			Source:             store.SourceForm,
		}
		if err := h.store.RecordAssessment(r.Context(), record); err != nil {
			h.logger.Warn("failed to record assessment", "error", err)
		}
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectAssessmentCompleted(id.String()), resp)
	}

	predictionsTotal.WithLabelValues(a.RiskLevel).Inc()
	writeJSON(w, http.StatusOK, resp)
}

// decodeRecord accepts either a JSON object or an urlencoded form; field
// values may be numbers or numeric strings.
func decodeRecord(r *http.Request) (borrower.Record, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return borrower.Record{}, err
		}
		return recordFromValues(func(name string) (string, bool) {
			v := strings.TrimSpace(r.PostForm.Get(name))
			return v, v != ""
		})
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return borrower.Record{}, err
	}
	return recordFromValues(func(name string) (string, bool) {
		v, ok := payload[name]
		if !ok || v == nil {
			return "", false
		}
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			return s, s != ""
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64), true
		default:
			return "", false
		}
	})
}

func recordFromValues(get func(string) (string, bool)) (borrower.Record, error) {
	var rec borrower.Record

	parseInt := func(name string, dst **int) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return err
		}
		n := int(f)
		*dst = &n
		return nil
	}

	parseFloat := func(name string, dst **float64) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return err
		}
		*dst = &f
		return nil
	}

	for _, step := range []error{
		parseInt("age", &rec.Age),
		parseFloat("monthlyIncome", &rec.MonthlyIncome),
		parseFloat("debtRatio", &rec.DebtRatio),
		parseFloat("creditUtilization", &rec.CreditUtilization),
		parseInt("openCreditLines", &rec.OpenCreditLines),
		parseInt("realEstateLoans", &rec.RealEstateLoans),
		parseInt("dependents", &rec.Dependents),
		parseInt("late30Days", &rec.Late30Days),
		parseInt("late60Days", &rec.Late60Days),
		parseInt("late90Days", &rec.Late90Days),
	} {
		if step != nil {
			return borrower.Record{}, step
		}
	}

	return rec, nil
}
