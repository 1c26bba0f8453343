package detector

import (
	"math"
	"regexp"
	"strings"
)

// BayesClassifier is a small TF-IDF weighted multinomial naive-Bayes text
// classifier. It is trained in-process on the built-in sample sentences;
// there is no model file and no external runtime.
type BayesClassifier struct {
	vocabulary map[string]bool
	idf        map[string]float64
	// per class: smoothed log-likelihood per term plus the default for
	// unseen terms
	logLikelihood map[string]map[string]float64
	logUnseen     map[string]float64
	logPrior      map[string]float64
	classes       []string
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]+`)

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"as": true, "is": true, "was": true, "are": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"can": true, "this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"your": true, "you": true,
}

// tokenize lowercases, strips punctuation and drops stop words and words
// shorter than three characters
func tokenize(text string) []string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	var filtered []string
	for _, word := range strings.Fields(text) {
		if len(word) >= 3 && !stopwords[word] {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// termFrequency normalizes token counts by document length
func termFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64)
	if len(tokens) == 0 {
		return tf
	}
	for _, token := range tokens {
		tf[token]++
	}
	total := float64(len(tokens))
	for token := range tf {
		tf[token] /= total
	}
	return tf
}

// TrainBayes fits the classifier on labeled sample documents
func TrainBayes(samples map[string][]string) *BayesClassifier {
	c := &BayesClassifier{
		vocabulary:    make(map[string]bool),
		idf:           make(map[string]float64),
		logLikelihood: make(map[string]map[string]float64),
		logUnseen:     make(map[string]float64),
		logPrior:      make(map[string]float64),
	}

	type doc struct {
		class  string
		tokens []string
	}
	var docs []doc
	for class, texts := range samples {
		c.classes = append(c.classes, class)
		for _, text := range texts {
			docs = append(docs, doc{class: class, tokens: tokenize(text)})
		}
	}

	// Document frequencies for the IDF table
	df := make(map[string]int)
	for _, d := range docs {
		seen := make(map[string]bool)
		for _, token := range d.tokens {
			c.vocabulary[token] = true
			if !seen[token] {
				df[token]++
				seen[token] = true
			}
		}
	}
	totalDocs := float64(len(docs))
	for token, count := range df {
		// Smoothed IDF so terms present in every document keep weight > 0
		c.idf[token] = math.Log((1+totalDocs)/(1+float64(count))) + 1
	}

	// Accumulate TF-IDF mass per class
	classMass := make(map[string]map[string]float64)
	classTotal := make(map[string]float64)
	classDocs := make(map[string]float64)
	for _, d := range docs {
		if classMass[d.class] == nil {
			classMass[d.class] = make(map[string]float64)
		}
		classDocs[d.class]++
		for token, tf := range termFrequency(d.tokens) {
			w := tf * c.idf[token]
			classMass[d.class][token] += w
			classTotal[d.class] += w
		}
	}

	// Laplace-smoothed log likelihoods
	vocabSize := float64(len(c.vocabulary))
	for _, class := range c.classes {
		c.logPrior[class] = math.Log(classDocs[class] / totalDocs)
		c.logLikelihood[class] = make(map[string]float64, len(c.vocabulary))
		denom := classTotal[class] + vocabSize
		for token := range c.vocabulary {
			c.logLikelihood[class][token] = math.Log((classMass[class][token] + 1) / denom)
		}
		c.logUnseen[class] = math.Log(1 / denom)
	}

	return c
}

// Probability returns the posterior probability of the given class for the
// text, via log-sum-exp over all classes. Unknown tokens fall back to the
// unseen-term likelihood.
func (c *BayesClassifier) Probability(text, class string) float64 {
	if _, ok := c.logPrior[class]; !ok {
		return 0
	}
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	scores := make(map[string]float64, len(c.classes))
	for _, cl := range c.classes {
		score := c.logPrior[cl]
		for _, token := range tokens {
			if ll, ok := c.logLikelihood[cl][token]; ok {
				score += ll
			} else {
				score += c.logUnseen[cl]
			}
		}
		scores[cl] = score
	}

	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	var total float64
	for _, s := range scores {
		total += math.Exp(s - maxScore)
	}
	return math.Exp(scores[class]-maxScore) / total
}

// phishingSamples and legitimateSamples are the built-in training set
var phishingSamples = []string{
	"Urgent: Your account will be suspended. Click here to verify",
	"Congratulations! You've won $1000. Claim your prize now",
	"Your bank account has been compromised. Login immediately",
	"Update your payment information to avoid service interruption",
	"Security alert: Unusual activity detected on your account",
	"Your package delivery failed. Update shipping information",
	"Tax refund available. Download form to claim $500",
	"Your email will be deleted. Verify account now",
}

var legitimateSamples = []string{
	"Meeting scheduled for tomorrow at 2 PM in conference room",
	"Please review the attached document and provide feedback",
	"Monthly report is due by end of week",
	"Welcome to our newsletter. Unsubscribe anytime",
	"Your order has been shipped and will arrive tomorrow",
	"Thank you for your purchase. Receipt attached",
	"System maintenance scheduled for this weekend",
	"New policy updates effective next month",
}

// trainPhishingClassifier fits the classifier on the built-in samples
func trainPhishingClassifier() *BayesClassifier {
	return TrainBayes(map[string][]string{
		"phishing":   phishingSamples,
		"legitimate": legitimateSamples,
	})
}
