package classify

import (
	"context"

	"github.com/wal-g/tracelog"
)

// Classifier decides whether a path is worth sending to intake.
// Deny rules win over allow rules; only paths matching neither are probed.
type Classifier struct {
	rules *Rules
	probe TypeProbe
}

func NewClassifier(rules *Rules, probe TypeProbe) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules, probe: probe}
}

func (c *Classifier) Classify(ctx context.Context, path string) Decision {
	if rule, ok := c.rules.NeverCollect.Match(path); ok {
		tracelog.DebugLogger.Printf("%s matches never-collect rule %s", path, rule)
		return Blocked
	}
	if rule, ok := c.rules.AlwaysCollect.Match(path); ok {
		tracelog.DebugLogger.Printf("%s matches always-collect rule %s", path, rule)
		return Forced
	}

	hint, err := c.probe.Detect(ctx, path)
	if err != nil {
		tracelog.WarningLogger.Printf("Type probe failed for %s: %v", path, err)
		return NotInteresting
	}
	tracelog.DebugLogger.Printf("%s: %s", path, hint)
	return c.decideByHint(hint)
}

func (c *Classifier) decideByHint(hint TypeHint) Decision {
	switch {
	case hint.ContainsAny(c.rules.BinaryIndicators):
		return TypeMatchBinary
	case hint.ContainsAny(c.rules.ScriptIndicators):
		return TypeMatchScript
	default:
		return NotInteresting
	}
}
