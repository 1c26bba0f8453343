package detector

import "regexp"

// ThreatType labels a detection category
type ThreatType string

const (
	ThreatPhishing          ThreatType = "phishing"
	ThreatMalware           ThreatType = "malware"
	ThreatRansomware        ThreatType = "ransomware"
	ThreatDDoS              ThreatType = "ddos"
	ThreatSocialEngineering ThreatType = "social_engineering"
	ThreatDataBreach        ThreatType = "data_breach"
	ThreatInsider           ThreatType = "insider_threat"
	ThreatAPT               ThreatType = "apt"
)

// Severity of a detection
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityForConfidence maps a confidence score to its severity band
func severityForConfidence(confidence float64) Severity {
	switch {
	case confidence >= 0.9:
		return SeverityCritical
	case confidence >= 0.7:
		return SeverityHigh
	case confidence >= 0.5:
		return SeverityMedium
	case confidence >= 0.3:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// suspiciousPatterns are the per-category content patterns. Dutch patterns
// first, then the international ones.
var suspiciousPatterns = map[ThreatType][]*regexp.Regexp{
	ThreatPhishing: compileAll(
		`(?i)urgent.*actie.*vereist`,
		`(?i)account.*geblokkeerd`,
		`(?i)verifieer.*gegevens`,
		`(?i)klik.*hier.*nu`,
		`(?i)beperkte.*tijd`,
		`(?i)beveiligings.*waarschuwing`,
		`(?i)login.*verificatie`,
		`(?i)verify.*account`,
		`(?i)urgent.*action.*required`,
		`(?i)suspended.*account`,
		`(?i)click.*here.*immediately`,
		`(?i)limited.*time.*offer`,
		`(?i)claim.*prize`,
		`(?i)tax.*refund`,
	),
	ThreatMalware: compileAll(
		`(?i)download.*now`,
		`(?i)install.*update`,
		`(?i)virus.*detected`,
		`(?i)clean.*computer`,
		`(?i)speed.*up.*pc`,
	),
	ThreatSocialEngineering: compileAll(
		`(?i)confidential.*information`,
		`(?i)share.*password`,
		`(?i)call.*immediately`,
		`(?i)urgent.*help.*needed`,
	),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

var (
	urlRe       = regexp.MustCompile(`https?://[^\s"'<>]+`)
	urlHostRe   = regexp.MustCompile(`://([^/\s]+)`)
	ipLiteralRe = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
)

// trustedDomains are known-good Dutch domains used for the typosquatting
// check
var trustedDomains = map[string]bool{
	"euramax.nl":         true,
	"euramax.eu":         true,
	"government.nl":      true,
	"belastingdienst.nl": true,
	"ing.nl":             true,
	"rabobank.nl":        true,
	"abn-amro.nl":        true,
}

// suspiciousExtensions flag executable-style uploads
var suspiciousExtensions = []string{".exe", ".scr", ".bat", ".cmd", ".pif"}
