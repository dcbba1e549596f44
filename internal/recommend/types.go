package recommend

// Technique is a named privacy-preserving transformation. Recommended, never
// applied, by this engine.
type Technique string

const (
	DifferentialPrivacy    Technique = "differential_privacy"
	KAnonymity             Technique = "k_anonymity"
	LDiversity             Technique = "l_diversity"
	TCloseness             Technique = "t_closeness"
	DataMasking            Technique = "data_masking"
	Tokenization           Technique = "tokenization"
	HomomorphicEncryption  Technique = "homomorphic_encryption"
	SecureMultiparty       Technique = "secure_multiparty_computation"
	FederatedLearning      Technique = "federated_learning"
)

// Priority ranks how urgently a technique should be adopted.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Recommendation pairs a technique with its priority and rationale.
type Recommendation struct {
	Technique Technique `json:"technique"`
	Priority  Priority  `json:"priority"`
	Reason    string    `json:"reason"`
}

// effectiveness is the fixed per-technique effectiveness table used by the
// score aggregator. Values stay inside [60,98].
var effectiveness = map[Technique]int{
	HomomorphicEncryption: 95,
	SecureMultiparty:      92,
	DifferentialPrivacy:   90,
	Tokenization:          88,
	FederatedLearning:     85,
	LDiversity:            78,
	TCloseness:            75,
	KAnonymity:            72,
	DataMasking:           60,
}

// Effectiveness returns the fixed effectiveness rating of a technique.
func Effectiveness(t Technique) int {
	return effectiveness[t]
}

// Techniques returns all nine techniques in descending effectiveness order.
func Techniques() []Technique {
	return []Technique{
		HomomorphicEncryption,
		SecureMultiparty,
		DifferentialPrivacy,
		Tokenization,
		FederatedLearning,
		LDiversity,
		TCloseness,
		KAnonymity,
		DataMasking,
	}
}
