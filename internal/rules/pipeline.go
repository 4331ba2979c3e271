package rules

// Pipeline is an ordered list of rules applied to one target.
type Pipeline[T any] struct {
	rules []Rule[T]
}

// NewPipeline creates a pipeline running rules in order.
func NewPipeline[T any](rules ...Rule[T]) *Pipeline[T] {
	return &Pipeline[T]{rules: append([]Rule[T](nil), rules...)}
}

// Then returns a new pipeline with rules appended; p is unchanged.
func (p *Pipeline[T]) Then(rules ...Rule[T]) *Pipeline[T] {
	out := make([]Rule[T], 0, len(p.rules)+len(rules))
	out = append(out, p.rules...)
	out = append(out, rules...)
	return &Pipeline[T]{rules: out}
}

// Rules returns the rules in order.
func (p *Pipeline[T]) Rules() []Rule[T] {
	return append([]Rule[T](nil), p.rules...)
}

// Apply runs every rule against target and returns the first error.
// Mutations made before a failing rule are kept.
func (p *Pipeline[T]) Apply(target T, bag *Bag) error {
	for _, rule := range p.rules {
		if err := rule.Apply(target, bag); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the options the pipeline recognizes in first use order.
func (p *Pipeline[T]) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, rule := range p.rules {
		for _, key := range rule.keys {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
