package detector

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	e := NewEngine(0.7)
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }
	return e
}

func TestAnalyzeEmailPhishing(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeEmail(
		"URGENT: your account has been suspended. Verify your account now to claim your prize: http://192.168.1.1/login",
		"security@example-bank.com",
		"Account suspended",
	)

	require.NotNil(t, result)
	assert.Equal(t, ThreatPhishing, result.ThreatType)
	assert.True(t, strings.HasPrefix(result.AnalysisID, "email_"))
	assert.Greater(t, result.Confidence, 0.7)
	assert.NotEmpty(t, result.Indicators)
	assert.NotEmpty(t, result.RecommendedActions)
	assert.Equal(t, "security@example-bank.com", result.SourceData["sender"])
}

func TestAnalyzeEmailLegitimate(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeEmail(
		"Please review the attached meeting agenda and send feedback before Friday.",
		"collega@bedrijf.nl",
		"Agenda teamoverleg",
	)

	assert.Less(t, result.Confidence, 0.5)
	assert.False(t, e.Detected(result))
}

func TestAnalyzeEmailMaliciousSender(t *testing.T) {
	e := newTestEngine()
	e.AddMaliciousDomain("evil.example")

	result := e.AnalyzeEmail("hallo", "ceo@evil.example", "hoi")

	assert.GreaterOrEqual(t, result.Confidence, 0.8)
	assert.True(t, e.Detected(result))
	assert.Contains(t, result.Indicators[0], "evil.example")
}

func TestURLRisk(t *testing.T) {
	e := newTestEngine()
	e.AddMaliciousDomain("bad.example")

	tests := []struct {
		name string
		url  string
		want float64
	}{
		{"trusted domain", "https://ing.nl/inloggen", 0},
		{"known malicious", "http://bad.example/x", 0.9},
		{"ip literal host", "http://10.1.2.3/path", 0.4},
		{"many hyphens", "http://a-b-c-d-e.example/x", 0.2},
		{"typosquat of trusted", "https://ing.nl.verify-login.example", 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.urlRisk(tt.url), 1e-9)
		})
	}
}

func TestURLRiskLongHostname(t *testing.T) {
	e := newTestEngine()
	host := strings.Repeat("a", 60) + ".example"
	assert.InDelta(t, 0.3, e.urlRisk("http://"+host+"/x"), 1e-9)
}

func TestAnalyzeFileSuspiciousExtension(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeFile([]byte("echo hello"), "factuur.pdf.exe")

	assert.Equal(t, ThreatMalware, result.ThreatType)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.NotEmpty(t, result.SourceData["sha256"])
}

func TestAnalyzeFilePowershellContent(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeFile([]byte("PowerShell -enc SQBFAFgA"), "update.bat")

	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestAnalyzeFileClean(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeFile([]byte("kwartaalcijfers"), "rapport.txt")

	assert.Zero(t, result.Confidence)
	assert.False(t, e.Detected(result))
}

func TestAnalyzeNetworkMaliciousIP(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeNetwork("192.168.1.100", "172.16.0.1", []byte("SYN"))

	assert.Equal(t, ThreatDDoS, result.ThreatType)
	assert.Equal(t, SeverityHigh, result.Severity)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
}

func TestAnalyzeNetworkBaseline(t *testing.T) {
	e := newTestEngine()

	result := e.AnalyzeNetwork("172.16.0.1", "172.16.0.2", []byte("GET / HTTP/1.1"))

	assert.Equal(t, ThreatAPT, result.ThreatType)
	assert.InDelta(t, 0.1, result.Confidence, 1e-9)
	assert.False(t, e.Detected(result))
}

func TestScanSampleFeedDetectsBoth(t *testing.T) {
	e := newTestEngine()

	detected := e.ScanSampleFeed()

	require.Len(t, detected, 2)
	for _, r := range detected {
		assert.Equal(t, ThreatPhishing, r.ThreatType)
		assert.NotEmpty(t, r.Indicators)
		assert.Greater(t, r.Confidence, 0.4)
	}
}

func TestStatisticsCounters(t *testing.T) {
	e := newTestEngine()

	e.AnalyzeFile([]byte("schoon"), "notitie.txt")
	e.AnalyzeNetwork("192.168.1.100", "10.0.0.1", nil)

	stats := e.Statistics()
	assert.Equal(t, 2, stats.TotalScans)
	assert.Equal(t, 1, stats.ThreatsDetected)
	require.NotNil(t, stats.LastScan)
}

func TestSeverityBands(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Severity
	}{
		{0.95, SeverityCritical},
		{0.9, SeverityCritical},
		{0.75, SeverityHigh},
		{0.5, SeverityMedium},
		{0.3, SeverityLow},
		{0.1, SeverityInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, severityForConfidence(tt.confidence), "confidence %.2f", tt.confidence)
	}
}
