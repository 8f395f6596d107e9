package dispatch

//go:generate go tool stringer -type=Category -output=category_string.go

// Category classifies a host operation name by its dimension rule.
type Category int

const (
	// CategoryUnsupported marks operation names outside the table.
	CategoryUnsupported Category = iota
	// CategoryAdditive requires both operands to share operand 0's
	// dimension, which the result keeps.
	CategoryAdditive
	// CategoryMultiplicative yields the product of operand dimensions.
	CategoryMultiplicative
	// CategoryDivisive yields the quotient of operand dimensions.
	CategoryDivisive
	// CategoryPassthrough keeps the sole operand's dimension.
	CategoryPassthrough
	// CategorySqrt halves every exponent of the operand's dimension.
	CategorySqrt
	// CategoryPower raises operand 0's dimension to a plain-number
	// exponent.
	CategoryPower
	// CategorySetItem requires the assigned value to match the target's
	// dimension.
	CategorySetItem
	// CategoryComparison requires identical dimensions and yields a bare
	// logical result.
	CategoryComparison
	// CategoryStack requires every element to match the first, which sets
	// the result dimension.
	CategoryStack
	// CategoryShape yields bare structural values.
	CategoryShape

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// categories maps every recognized operation name, aliases included, to its
// dimension rule.
var categories = map[string]Category{
	"add":      CategoryAdditive,
	"sub":      CategoryAdditive,
	"subtract": CategoryAdditive,
	"hypot":    CategoryAdditive,

	"mul":      CategoryMultiplicative,
	"multiply": CategoryMultiplicative,
	"matmul":   CategoryMultiplicative,

	"truediv":     CategoryDivisive,
	"true_divide": CategoryDivisive,
	"divide":      CategoryDivisive,

	"neg":          CategoryPassthrough,
	"negative":     CategoryPassthrough,
	"pos":          CategoryPassthrough,
	"positive":     CategoryPassthrough,
	"abs":          CategoryPassthrough,
	"absolute":     CategoryPassthrough,
	"sum":          CategoryPassthrough,
	"mean":         CategoryPassthrough,
	"broadcast_to": CategoryPassthrough,
	"transpose":    CategoryPassthrough,
	"trace":        CategoryPassthrough,
	"take":         CategoryPassthrough,
	"ptp":          CategoryPassthrough,
	"getitem":      CategoryPassthrough,
	"amax":         CategoryPassthrough,
	"amin":         CategoryPassthrough,
	"max":          CategoryPassthrough,
	"min":          CategoryPassthrough,

	"sqrt": CategorySqrt,

	"pow":   CategoryPower,
	"power": CategoryPower,

	"setitem": CategorySetItem,

	"lt":            CategoryComparison,
	"le":            CategoryComparison,
	"eq":            CategoryComparison,
	"ne":            CategoryComparison,
	"gt":            CategoryComparison,
	"ge":            CategoryComparison,
	"equal":         CategoryComparison,
	"not_equal":     CategoryComparison,
	"less":          CategoryComparison,
	"less_equal":    CategoryComparison,
	"greater":       CategoryComparison,
	"greater_equal": CategoryComparison,
	"isfinite":      CategoryComparison,
	"isnan":         CategoryComparison,

	"stack":       CategoryStack,
	"concatenate": CategoryStack,

	"shape": CategoryShape,
	"ndim":  CategoryShape,
	"size":  CategoryShape,
}

// Classify returns the category for a host operation name.
func Classify(op string) Category {
	return categories[op]
}
