package detector

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Result of one analysis
type Result struct {
	AnalysisID         string                 `json:"analysis_id"`
	ThreatType         ThreatType             `json:"threat_type"`
	Severity           Severity               `json:"severity"`
	Confidence         float64                `json:"confidence"`
	Description        string                 `json:"description"`
	DutchDescription   string                 `json:"dutch_description"`
	Indicators         []string               `json:"indicators"`
	RecommendedActions []string               `json:"recommended_actions"`
	Timestamp          time.Time              `json:"timestamp"`
	SourceData         map[string]interface{} `json:"source_data"`
}

// Stats are the engine's running counters
type Stats struct {
	TotalScans      int        `json:"total_scans"`
	ThreatsDetected int        `json:"threats_detected"`
	LastScan        *time.Time `json:"last_scan"`
}

// Engine runs all analyses: regex pattern matching, URL heuristics and the
// naive-Bayes classifier. Safe for concurrent use.
type Engine struct {
	classifier *BayesClassifier
	threshold  float64

	maliciousDomains map[string]bool
	maliciousIPs     map[string]bool
	knownSignatures  map[string]bool

	mu    sync.Mutex
	stats Stats
	now   func() time.Time
}

// NewEngine trains the classifier and returns a ready engine. The threshold
// is the confidence above which a result counts as a detected threat.
func NewEngine(threshold float64) *Engine {
	e := &Engine{
		classifier:       trainPhishingClassifier(),
		threshold:        threshold,
		maliciousDomains: make(map[string]bool),
		maliciousIPs:     map[string]bool{"192.168.1.100": true, "10.0.0.50": true},
		knownSignatures:  make(map[string]bool),
		now:              time.Now,
	}
	log.Printf("[DETECTOR] Engine ready, %d vocabulary terms, threshold %.2f",
		len(e.classifier.vocabulary), threshold)
	return e
}

// Threshold returns the configured detection threshold
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// Detected reports whether a result crosses the detection threshold
func (e *Engine) Detected(r *Result) bool {
	return r.Confidence > e.threshold
}

// AddMaliciousDomain feeds a threat-intel domain into the engine
func (e *Engine) AddMaliciousDomain(domain string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maliciousDomains[strings.ToLower(domain)] = true
}

// AnalyzeEmail scores an email for phishing
func (e *Engine) AnalyzeEmail(content, sender, subject string) *Result {
	confidence := 0.0
	var indicators []string

	// Sender domain reputation
	senderDomain := ""
	if at := strings.LastIndex(sender, "@"); at >= 0 {
		senderDomain = strings.ToLower(sender[at+1:])
	}
	e.mu.Lock()
	knownBad := e.maliciousDomains[senderDomain]
	e.mu.Unlock()
	if knownBad {
		confidence += 0.8
		indicators = append(indicators, fmt.Sprintf("Bekende kwaadaardige afzender: %s", senderDomain))
	}

	// Content pattern matching
	text := content + " " + subject
	matches := 0
	for _, re := range suspiciousPatterns[ThreatPhishing] {
		if re.MatchString(text) {
			matches++
			indicators = append(indicators, fmt.Sprintf("Verdacht patroon gevonden: %s", re.String()))
		}
	}
	if matches > 0 {
		confidence += min(float64(matches)*0.2, 0.6)
	}

	// Embedded URL heuristics
	urls := urlRe.FindAllString(content, -1)
	for _, url := range urls {
		risk := e.urlRisk(url)
		confidence += risk * 0.3
		if risk > 0.5 {
			indicators = append(indicators, fmt.Sprintf("Verdachte URL gedetecteerd: %s", url))
		}
	}

	// Classifier verdict
	prob := e.classifier.Probability(text, "phishing")
	confidence += prob * 0.4
	if prob > 0.7 {
		indicators = append(indicators, fmt.Sprintf("Classifier phishing-kans: %.2f", prob))
	}

	confidence = min(confidence, 1.0)
	severity := severityForConfidence(confidence)

	result := &Result{
		AnalysisID:         "email_" + uuid.NewString(),
		ThreatType:         ThreatPhishing,
		Severity:           severity,
		Confidence:         confidence,
		Description:        fmt.Sprintf("Phishing analysis completed with %.2f confidence", confidence),
		DutchDescription:   dutchEmailDescription(confidence, len(indicators)),
		Indicators:         indicators,
		RecommendedActions: recommendations(severity),
		Timestamp:          e.now(),
		SourceData: map[string]interface{}{
			"sender":         sender,
			"subject":        subject,
			"content_length": len(content),
			"urls_found":     len(urls),
		},
	}
	e.recordScan(result)
	return result
}

// urlRisk scores a single URL on suspicious characteristics, capped at 1.0
func (e *Engine) urlRisk(url string) float64 {
	m := urlHostRe.FindStringSubmatch(url)
	if m == nil {
		return 0
	}
	host := strings.ToLower(m[1])

	e.mu.Lock()
	knownBad := e.maliciousDomains[host]
	e.mu.Unlock()
	if knownBad {
		return 0.9
	}
	if trustedDomains[host] {
		return 0
	}

	risk := 0.0
	if len(host) > 50 {
		risk += 0.3
	}
	if ipLiteralRe.MatchString(host) {
		risk += 0.4
	}
	if strings.Count(host, "-") > 3 {
		risk += 0.2
	}
	for trusted := range trustedDomains {
		// Typosquatting: a trusted name embedded in a non-trusted host
		if strings.Contains(host, trusted) {
			risk += 0.6
			break
		}
	}
	return min(risk, 1.0)
}

// AnalyzeFile scores an uploaded file for malware
func (e *Engine) AnalyzeFile(content []byte, filename string) *Result {
	confidence := 0.0
	var indicators []string

	sum := sha256.Sum256(content)
	fileHash := hex.EncodeToString(sum[:])
	e.mu.Lock()
	knownBad := e.knownSignatures[fileHash]
	e.mu.Unlock()
	if knownBad {
		confidence = 1.0
		indicators = append(indicators, fmt.Sprintf("Bekende malware hash: %s...", fileHash[:16]))
	}

	lower := strings.ToLower(filename)
	for _, ext := range suspiciousExtensions {
		if strings.HasSuffix(lower, ext) {
			confidence += 0.4
			indicators = append(indicators, fmt.Sprintf("Verdachte bestandsextensie: %s", filename))
			break
		}
	}

	if strings.Contains(strings.ToLower(string(content)), "powershell") {
		confidence += 0.3
		indicators = append(indicators, "PowerShell commando's gedetecteerd")
	}

	confidence = min(confidence, 1.0)
	severity := SeverityMedium
	if confidence > 0.7 {
		severity = SeverityHigh
	}

	result := &Result{
		AnalysisID:         "file_" + uuid.NewString(),
		ThreatType:         ThreatMalware,
		Severity:           severity,
		Confidence:         confidence,
		Description:        fmt.Sprintf("Malware analysis of %s", filename),
		DutchDescription:   fmt.Sprintf("Malware detectie voltooid voor %s - risico niveau: %s", filename, severity),
		Indicators:         indicators,
		RecommendedActions: []string{"Quarantaine bestand", "Voer antivirus scan uit", "Isoleer systeem"},
		Timestamp:          e.now(),
		SourceData: map[string]interface{}{
			"filename":  filename,
			"file_size": len(content),
			"sha256":    fileHash,
		},
	}
	e.recordScan(result)
	return result
}

// AnalyzeNetwork scores a network flow sample
func (e *Engine) AnalyzeNetwork(sourceIP, destinationIP string, payload []byte) *Result {
	confidence := 0.1 // baseline
	var indicators []string

	e.mu.Lock()
	badSource, badDest := e.maliciousIPs[sourceIP], e.maliciousIPs[destinationIP]
	e.mu.Unlock()
	if badSource || badDest {
		confidence += 0.8
		indicators = append(indicators, "Verbinding met bekende kwaadaardige IP")
	}

	if strings.Contains(string(payload), "GET /") && len(payload) > 10000 {
		confidence += 0.3
		indicators = append(indicators, "Verdacht groot HTTP request")
	}

	confidence = min(confidence, 1.0)
	threatType := ThreatAPT
	if confidence > 0.6 {
		threatType = ThreatDDoS
	}
	severity := SeverityMedium
	if confidence > 0.7 {
		severity = SeverityHigh
	}

	result := &Result{
		AnalysisID:         "network_" + uuid.NewString(),
		ThreatType:         threatType,
		Severity:           severity,
		Confidence:         confidence,
		Description:        fmt.Sprintf("Network analysis: %s -> %s", sourceIP, destinationIP),
		DutchDescription:   fmt.Sprintf("Netwerkanalyse voltooid - %d indicatoren gevonden", len(indicators)),
		Indicators:         indicators,
		RecommendedActions: []string{"Blokkeer IP", "Activeer DDoS bescherming", "Monitor verkeer"},
		Timestamp:          e.now(),
		SourceData: map[string]interface{}{
			"source_ip":      sourceIP,
			"destination_ip": destinationIP,
			"payload_size":   len(payload),
		},
	}
	e.recordScan(result)
	return result
}

// sampleFeed is the mock email feed scanned by the background job
var sampleFeed = []struct {
	content string
	sender  string
	subject string
}{
	{
		content: "URGENT: Your bank account has been compromised. Click here to secure it immediately.",
		sender:  "suspicious@fake-bank.com",
		subject: "Account Security",
	},
	{
		content: "Congratulations! You have won 10000 euro in our lottery. Click to claim your prize now!",
		sender:  "winner@fake-lottery.org",
		subject: "Lottery Winner",
	},
}

// ScanSampleFeed analyzes the built-in sample feed and returns everything
// that crossed the threshold or tripped a content pattern. The scheduler
// calls this periodically.
func (e *Engine) ScanSampleFeed() []*Result {
	var detected []*Result
	for _, email := range sampleFeed {
		result := e.AnalyzeEmail(email.content, email.sender, email.subject)
		if e.Detected(result) || len(result.Indicators) > 0 {
			detected = append(detected, result)
		}
	}
	return detected
}

func (e *Engine) recordScan(r *Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.TotalScans++
	now := e.now()
	e.stats.LastScan = &now
	if r.Confidence > e.threshold {
		e.stats.ThreatsDetected++
		log.Printf("[DETECTOR] Threat detected: type=%s severity=%s confidence=%.2f",
			r.ThreatType, r.Severity, r.Confidence)
	}
}

// Statistics returns a snapshot of the engine counters
func (e *Engine) Statistics() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

func dutchEmailDescription(confidence float64, indicatorCount int) string {
	switch {
	case confidence >= 0.8:
		return fmt.Sprintf("HOOGRISICO phishing-aanval gedetecteerd met %d verdachte indicatoren. Onmiddellijke actie vereist.", indicatorCount)
	case confidence >= 0.6:
		return fmt.Sprintf("Waarschijnlijke phishing-poging gedetecteerd. %d verdachte elementen gevonden.", indicatorCount)
	case confidence >= 0.4:
		return fmt.Sprintf("Mogelijk verdachte email. %d indicatoren vereisen aandacht.", indicatorCount)
	default:
		return "Email gescand - geen significante bedreigingen gedetecteerd."
	}
}

func recommendations(severity Severity) []string {
	base := []string{
		"Verwijder email onmiddellijk",
		"Rapporteer incident aan IT-beveiliging",
		"Controleer geen links of bijlagen",
	}
	switch severity {
	case SeverityCritical, SeverityHigh:
		return append(base,
			"Waarschuw alle medewerkers",
			"Activeer incident response protocol",
			"Blokkeer afzender domein",
			"Voer netwerkbeveiliging controle uit")
	case SeverityMedium:
		return append(base,
			"Informeer beveiligingsteam",
			"Controleer andere emails van afzender")
	default:
		return []string{"Markeer als verdacht", "Rapporteer aan IT-afdeling"}
	}
}
