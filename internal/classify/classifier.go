package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy names a prompt template style for instructing the model
type Strategy string

const (
	StrategyMinimal           Strategy = "minimal"
	StrategySingleExample     Strategy = "single-example"
	StrategyMultiExample      Strategy = "multi-example"
	StrategyStepwiseReasoning Strategy = "stepwise-reasoning"
)

// ParseStrategy validates a strategy name given via explicit override
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMinimal, StrategySingleExample, StrategyMultiExample, StrategyStepwiseReasoning:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy: %s (want minimal, single-example, multi-example or stepwise-reasoning)", s)
}

// Classifier scores input text and selects a prompt strategy
type Classifier interface {
	Classify(text string) Strategy
}

// Known limitation: idiom detection is a fixed allow-list of literal phrases,
// not general idiom recognition. Texts containing idioms outside this list
// are scored as if they were plain prose.
var knownIdioms = []string{
	"break a leg",
	"piece of cake",
	"hit the sack",
	"under the weather",
	"once in a blue moon",
	"spill the beans",
	"cost an arm and a leg",
	"bite the bullet",
	"raining cats and dogs",
	"the ball is in your court",
}

// unusualSymbolRE matches characters outside letters, digits, whitespace and
// everyday punctuation
var unusualSymbolRE = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?'"-]`)

// HeuristicClassifier selects a strategy from coarse text features: word
// count, the idiom allow-list and unusual symbols. It never selects
// stepwise-reasoning; that strategy is only reachable via explicit override.
type HeuristicClassifier struct {
	idioms []string
}

// NewHeuristicClassifier creates a classifier with the built-in idiom list
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{idioms: knownIdioms}
}

// Classify applies the heuristics in order, first match wins
func (c *HeuristicClassifier) Classify(text string) Strategy {
	words := len(strings.Fields(text))
	idiom := c.containsIdiom(text)
	symbols := unusualSymbolRE.MatchString(text)

	if words <= 5 && !idiom && !symbols {
		return StrategyMinimal
	}
	if words <= 15 && !idiom {
		return StrategySingleExample
	}
	return StrategyMultiExample
}

func (c *HeuristicClassifier) containsIdiom(text string) bool {
	lower := strings.ToLower(text)
	for _, idiom := range c.idioms {
		if strings.Contains(lower, idiom) {
			return true
		}
	}
	return false
}
