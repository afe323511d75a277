package expr

// Category classifies an expression by the value class it belongs to.
type Category string

const (
	// CategoryUnity marks catalog expressions that evaluate to 1.
	CategoryUnity Category = "unity"

	// CategoryZero marks catalog expressions that evaluate to 0.
	CategoryZero Category = "zero"

	// CategoryAdvanced marks catalog identities that evaluate to 1 through
	// less elementary routes (golden ratio, trig and log identities).
	CategoryAdvanced Category = "advanced"

	// CategorySynthesized marks expressions produced by the diversity
	// generator rather than drawn from the catalog.
	CategorySynthesized Category = "synthesized"
)

// ValidCategories defines the allowed category values.
var ValidCategories = map[Category]bool{
	CategoryUnity:       true,
	CategoryZero:        true,
	CategoryAdvanced:    true,
	CategorySynthesized: true,
}

// Expression pairs a textual mathematical formula with its category.
// Expressions are immutable values; evaluation is a pure function of Text.
type Expression struct {
	Text     string
	Category Category
}

// New creates an Expression with canonicalized text.
func New(text string, category Category) Expression {
	return Expression{Text: Canonical(text), Category: category}
}

// Evaluate parses and evaluates the expression's text.
func (e Expression) Evaluate() (float64, error) {
	return Evaluate(e.Text)
}

// String returns the expression text.
func (e Expression) String() string {
	return e.Text
}
