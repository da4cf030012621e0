package hwid

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Strategy is one way of obtaining an identifier from the host.
type Strategy struct {
	Name  string
	Probe func(ctx context.Context) (string, error)
}

// Chain is the ordered list of strategies for one identifier. The first
// strategy that yields a non-empty value wins.
type Chain struct {
	Kind       Kind
	Sentinel   string
	Strategies []Strategy
}

// Resolve runs the strategies in order and returns the first normalized
// result, or the chain's sentinel when every strategy fails.
func (c Chain) Resolve(ctx context.Context, log logrus.FieldLogger) string {
	log = log.WithField("identifier", c.Kind)
	for _, s := range c.Strategies {
		value, err := runStrategy(ctx, s)
		if err == nil {
			value = Normalize(value)
			if value == "" {
				err = emptyOutput(s.Name)
			}
		}
		if err != nil {
			log.WithFields(logrus.Fields{
				"strategy": s.Name,
				"kind":     KindOf(err).String(),
			}).WithError(err).Debug("strategy failed, trying next")
			continue
		}
		log.WithField("strategy", s.Name).Debug("identifier resolved")
		return value
	}
	log.Info("all strategies failed, using sentinel")
	return c.Sentinel
}

// runStrategy 执行单个策略，panic 也视为失败
func runStrategy(ctx context.Context, s Strategy) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
			err = newProbeError(LaunchFailed, s.Name, fmt.Errorf("panic: %v", r))
		}
	}()
	if s.Probe == nil {
		return "", unsupported(s.Name)
	}
	return s.Probe(ctx)
}
