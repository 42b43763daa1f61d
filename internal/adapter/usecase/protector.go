package usecase

import (
	"context"
	"math"
	"time"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// Rejection reasons reported by the experience protector.
const (
	ReasonQualityTooLow   = "content_quality_too_low"
	ReasonFrequencyLimit  = "frequency_limit_exceeded"
	ReasonDiversityNotMet = "diversity_requirements_not_met"
)

// Experience-protection caps. These are platform policy, not per-request
// inputs.
const (
	qualityFloor        = 40.0
	frequencySampleCap  = 100
	dailyDeliveryCap    = 3
	frequencyBlockRatio = 0.20
	maxAuthorDeliveries = 2
	maxTypeShare        = 0.60
	minOrganicGap       = 3
	protectionWindow    = 24 * time.Hour
)

// ProtectionResult is the outcome of the safety gate for one candidate
// promotion.
type ProtectionResult struct {
	Approved     bool
	Reason       string // empty when approved
	QualityScore float64
	SafetyScore  float64
	Constraints  domain.SafetyConstraints
	Report       ProtectionReport
}

// ProtectionReport echoes the static protection configuration back to
// the caller. It does not vary with the batch outcome.
type ProtectionReport struct {
	MaxDailyFrequency   int     `json:"maxDailyFrequency"`
	MinOrganicGap       int     `json:"minOrganicGap"`
	FrequencySampleCap  int     `json:"frequencySampleCap"`
	FrequencyBlockRatio float64 `json:"frequencyBlockRatio"`
	MaxAuthorDeliveries int     `json:"maxAuthorDeliveries"`
	MaxContentTypeShare float64 `json:"maxContentTypeShare"`
}

// ExperienceProtector gates promotions on content quality, per-user
// frequency and delivery diversity. Checks run in a fixed order and
// short-circuit on the first failure.
type ExperienceProtector struct {
	store port.CandidateStore
	now   func() time.Time
}

// NewExperienceProtector returns a protector backed by the given store.
func NewExperienceProtector(store port.CandidateStore) *ExperienceProtector {
	return &ExperienceProtector{store: store, now: time.Now}
}

// Protect runs the safety checks for one candidate promotion over its
// chosen targets.
func (p *ExperienceProtector) Protect(ctx context.Context, content *domain.Content, targets []domain.TargetUser) (*ProtectionResult, error) {
	res := &ProtectionResult{Report: staticReport()}

	quality, err := p.QualityScore(ctx, content)
	if err != nil {
		return nil, err
	}
	res.QualityScore = quality
	if quality < qualityFloor {
		res.Reason = ReasonQualityTooLow
		return res, nil
	}

	frequencyOK, err := p.checkFrequency(ctx, targets)
	if err != nil {
		return nil, err
	}
	if !frequencyOK {
		res.Reason = ReasonFrequencyLimit
		return res, nil
	}

	diversityOK, err := p.checkDiversity(ctx, content)
	if err != nil {
		return nil, err
	}
	if !diversityOK {
		res.Reason = ReasonDiversityNotMet
		return res, nil
	}

	res.Approved = true
	res.SafetyScore = 0.5*quality + 0.3*100 + 0.2*100
	res.Constraints = domain.SafetyConstraints{
		MaxDailyFrequency: dailyDeliveryCap,
		MinOrganicGap:     minOrganicGap,
		QualityThreshold:  quality,
		SafetyScore:       res.SafetyScore,
	}
	return res, nil
}

// QualityScore rates the content in [0,100]: a 30-point base, an
// engagement contribution capped at 40, a body-length adjustment, an
// author-reputation contribution capped at 15 and a staleness penalty
// for posts older than a week.
func (p *ExperienceProtector) QualityScore(ctx context.Context, content *domain.Content) (float64, error) {
	score := 30.0
	score += minf(40, float64(content.Engagement())/10)

	runes := len([]rune(content.Body))
	switch {
	case runes < 50:
		score -= 20
	case runes >= 300:
		score += 15
	}
	if content.Images > 0 {
		score += 15
	}

	reputation, err := p.store.AuthorReputation(ctx, content.AuthorID)
	if err != nil {
		return 0, err
	}
	score += math.Round(reputation * 15)

	if p.now().Sub(content.CreatedAt) > 7*24*time.Hour {
		score -= 10
	}
	return clamp(0, 100, score), nil
}

// checkFrequency samples up to 100 targets and fails when a fifth or
// more of the sample already sits at the daily delivery cap.
func (p *ExperienceProtector) checkFrequency(ctx context.Context, targets []domain.TargetUser) (bool, error) {
	sample := targets
	if len(sample) > frequencySampleCap {
		sample = sample[:frequencySampleCap]
	}
	if len(sample) == 0 {
		return true, nil
	}
	capped := 0
	for _, target := range sample {
		count, err := p.store.RecentDeliveryCount(ctx, target.UserID, protectionWindow)
		if err != nil {
			return false, err
		}
		if count >= dailyDeliveryCap {
			capped++
		}
	}
	return float64(capped)/float64(len(sample)) < frequencyBlockRatio, nil
}

// checkDiversity fails when the author already saturates the recent
// delivery stream, or when one content type dominates it.
func (p *ExperienceProtector) checkDiversity(ctx context.Context, content *domain.Content) (bool, error) {
	authorCount, err := p.store.AuthorDeliveryCount(ctx, content.AuthorID, protectionWindow)
	if err != nil {
		return false, err
	}
	if authorCount >= maxAuthorDeliveries {
		return false, nil
	}
	shares, err := p.store.ContentTypeShares(ctx, protectionWindow)
	if err != nil {
		return false, err
	}
	for _, share := range shares {
		if share > maxTypeShare {
			return false, nil
		}
	}
	return true, nil
}

func staticReport() ProtectionReport {
	return ProtectionReport{
		MaxDailyFrequency:   dailyDeliveryCap,
		MinOrganicGap:       minOrganicGap,
		FrequencySampleCap:  frequencySampleCap,
		FrequencyBlockRatio: frequencyBlockRatio,
		MaxAuthorDeliveries: maxAuthorDeliveries,
		MaxContentTypeShare: maxTypeShare,
	}
}
