// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

// AnalysisTier identifies which strategy of the fallback ladder produced a
// result.
type AnalysisTier string

const (
	// TierRemote means the remote LLM scored the text.
	TierRemote AnalysisTier = "remote"
	// TierLocal means the deterministic keyword heuristic scored the text.
	TierLocal AnalysisTier = "local"
	// TierDegraded means no tier could score the text; the entry is still
	// persisted with a static supportive message.
	TierDegraded AnalysisTier = "degraded"
)

// Score is a sentiment/stress pair produced by one analysis tier.
// Sentiment is in [-1.0, 1.0] (negative to positive valence); Stress is in
// [0, 10] (calm to extreme stress).
type Score struct {
	Sentiment float64 `json:"sentiment_score"`
	Stress    int     `json:"stress_index"`
}

// AnalysisResult is the outcome of analyzing one journal text. Sentiment
// and Stress are both set or both nil (the degraded tier leaves them nil);
// Feedback is always populated with supportive copy, whatever tier ran.
type AnalysisResult struct {
	Sentiment *float64     `json:"sentiment_score"`
	Stress    *int         `json:"stress_index"`
	Feedback  string       `json:"feedback"`
	Tier      AnalysisTier `json:"tier"`
}

// SetScore stores s on the result, keeping the both-or-neither invariant.
func (r *AnalysisResult) SetScore(s Score) {
	sentiment, stress := s.Sentiment, s.Stress
	r.Sentiment = &sentiment
	r.Stress = &stress
}
