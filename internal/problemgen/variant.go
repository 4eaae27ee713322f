package problemgen

import "github.com/abhisek/mathtik/internal/facts"

// Variant selects which mini-game visualizes a challenge.
type Variant string

const (
	// VariantFruitGroup shows A baskets of B fruit.
	VariantFruitGroup Variant = "fruit-group"
	// VariantFruitDivide deals A fruit to B friends.
	VariantFruitDivide Variant = "fruit-divide"
	// VariantCoinGroup shows A piles of B coins.
	VariantCoinGroup Variant = "coin-group"
	// VariantCoinDivide deals A coins to B friends.
	VariantCoinDivide Variant = "coin-divide"
)

// coinThreshold is the largest quantity still drawn as loose fruit.
const coinThreshold = 10

// SelectVariant picks the mini-game for a fact. Multiplication switches to
// coins when the product exceeds 10, division when the dividend does.
func SelectVariant(op facts.Operator, a, b int) Variant {
	if op == facts.Divide {
		if a > coinThreshold {
			return VariantCoinDivide
		}
		return VariantFruitDivide
	}
	if a*b > coinThreshold {
		return VariantCoinGroup
	}
	return VariantFruitGroup
}

// IsDivide reports whether the variant deals items out to friends.
func (v Variant) IsDivide() bool {
	return v == VariantFruitDivide || v == VariantCoinDivide
}

// IsCoin reports whether the variant uses coin stacks.
func (v Variant) IsCoin() bool {
	return v == VariantCoinGroup || v == VariantCoinDivide
}
