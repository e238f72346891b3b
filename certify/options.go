package certify

// Policy controls which syntax features the certifier admits. The zero
// value admits only the always-allowed core: identifiers, literals,
// array/object construction, property access, logical/conditional/
// sequence combinators, and template literals.
type Policy struct {
	// AllowThis admits `this` expressions.
	AllowThis bool

	// AllowCalls admits function calls, constructor invocations, and
	// tagged template expressions. Note that an admitted call can still
	// do anything its target does; exclusion is purely syntactic.
	AllowCalls bool

	// AllowArrows admits arrow function expressions with concise bodies.
	// Statement bodies are rejected regardless of this setting.
	AllowArrows bool

	// AllowMutation admits assignment and update expressions and the
	// `delete` operator.
	AllowMutation bool

	// AllowInspection admits the `typeof`, `in`, and `instanceof`
	// operators.
	AllowInspection bool
}

// Presets for common use cases.
var (
	// Baseline is the default policy: calls and arrow functions are
	// admitted, everything switchable is off.
	Baseline = Policy{
		AllowCalls:  true,
		AllowArrows: true,
	}

	// Strict admits only the always-allowed core syntax.
	Strict = Policy{}

	// Permissive turns on every switch. The permanently unsupported
	// kinds (function and class expressions, yield, await, dynamic
	// import, meta properties) remain rejected.
	Permissive = Policy{
		AllowThis:       true,
		AllowCalls:      true,
		AllowArrows:     true,
		AllowMutation:   true,
		AllowInspection: true,
	}
)

// Self is the sentinel global binding name referring to the receiver.
// Configured via WithGlobalThis, it makes free identifiers resolve to
// property accesses on `this` rather than on a named parameter.
const Self = "this"

// Option describes a function used to configure a certification.
type Option func(*config)

type config struct {
	policy Policy
	global string // "" means free identifiers are fatal
}

func newConfig(opts ...Option) *config {
	cfg := &config{policy: Baseline}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithPolicy replaces the entire policy configuration.
func WithPolicy(p Policy) Option {
	return func(cfg *config) {
		cfg.policy = p
	}
}

// WithThis sets whether `this` expressions are admitted.
func WithThis(allow bool) Option {
	return func(cfg *config) {
		cfg.policy.AllowThis = allow
	}
}

// WithCalls sets whether call, constructor, and tagged template
// expressions are admitted.
func WithCalls(allow bool) Option {
	return func(cfg *config) {
		cfg.policy.AllowCalls = allow
	}
}

// WithArrows sets whether arrow function expressions are admitted.
func WithArrows(allow bool) Option {
	return func(cfg *config) {
		cfg.policy.AllowArrows = allow
	}
}

// WithMutation sets whether assignment, update, and delete expressions
// are admitted.
func WithMutation(allow bool) Option {
	return func(cfg *config) {
		cfg.policy.AllowMutation = allow
	}
}

// WithInspection sets whether the typeof, in, and instanceof operators
// are admitted.
func WithInspection(allow bool) Option {
	return func(cfg *config) {
		cfg.policy.AllowInspection = allow
	}
}

// WithGlobal designates one top-level parameter as the global binding.
// Free identifiers are rewritten into property accesses on it. The name
// must appear in the parameter list passed to Certify.
func WithGlobal(name string) Option {
	return func(cfg *config) {
		cfg.global = name
	}
}

// WithGlobalThis makes `this` the global binding: free identifiers are
// rewritten into property accesses on the receiver.
func WithGlobalThis() Option {
	return func(cfg *config) {
		cfg.global = Self
	}
}
