package problemgen

// ChoiceCount is the size of every multiple-choice set.
const ChoiceCount = 4

// maxDelta bounds how far a distractor may sit from the answer.
const maxDelta = 4

// MakeChoices returns the answer plus three distinct distractors drawn
// near it, shuffled. Values never go below zero.
func MakeChoices(answer int, rng Rand) []int {
	seen := map[int]bool{answer: true}
	choices := []int{answer}

	for len(choices) < ChoiceCount {
		delta := rng.IntN(2*maxDelta+1) - maxDelta
		if delta == 0 {
			delta = rng.IntN(3) + 1
		}
		v := max(0, answer+delta)
		if seen[v] {
			continue
		}
		seen[v] = true
		choices = append(choices, v)
	}

	for i := len(choices) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		choices[i], choices[j] = choices[j], choices[i]
	}
	return choices
}
