package blackjack

import (
	"casino_platform/internal/model"
	"sort"
)

// evaluate считает оценку руки: множество достижимых сумм (туз
// ветвит каждую сумму на +1 и +11), лучшую сумму и флаги.
// Пустая рука дает нейтральный результат, не ошибку
func evaluate(cards []model.Card) model.HandEvaluation {
	if len(cards) == 0 {
		return model.HandEvaluation{Totals: []int{0}}
	}

	totals := []int{0}
	for _, c := range cards {
		if c.Rank == "A" {
			branched := make([]int, 0, len(totals)*2)
			for _, t := range totals {
				branched = append(branched, t+1, t+11)
			}
			totals = branched
		} else {
			v := model.RankValue(c.Rank)
			for i := range totals {
				totals[i] += v
			}
		}
	}

	totals = dedupeSorted(totals)

	// Лучшая сумма: максимум не выше 21, иначе минимальный перебор
	best := totals[0]
	for _, t := range totals {
		if t <= 21 {
			best = t
		}
	}

	eval := model.HandEvaluation{
		Totals:    totals,
		BestTotal: best,
		IsBust:    totals[0] > 21,
	}

	// Мягкая рука: лучшая сумма считает туз как 11 и может
	// безопасно опуститься на 10
	if best <= 21 {
		for _, t := range totals {
			if t == best-10 {
				eval.IsSoft = true
				break
			}
		}
	}

	eval.IsBlackjack = len(cards) == 2 && best == 21

	return eval
}

func dedupeSorted(totals []int) []int {
	sort.Ints(totals)
	out := totals[:1]
	for _, t := range totals[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}
