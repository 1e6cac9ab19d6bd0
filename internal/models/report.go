package models

// VerificationReport is the terminal artifact of a verification run.
type VerificationReport struct {
	Summary          string   `json:"summary"`
	Issues           []string `json:"issues"`
	FraudProbability string   `json:"fraud_probability"`
	CredibilityScore int      `json:"credibility_score"`
}
