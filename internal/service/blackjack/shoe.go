package blackjack

import (
	"casino_platform/internal/model"
	"casino_platform/internal/service"
	"casino_platform/pkg/fair"
	"strings"
)

// buildShoe собирает шуз из deckCount колод в каноническом порядке и
// тасует его Фишером-Йетсом. Партнер обмена на шаге i выбирается как
// fair.Int(serverSeed-clientSeed-0, i, i+1): перестановка однозначно
// привязана к паре сидов и воспроизводима при верификации
func buildShoe(serverSeed, clientSeed string, deckCount int) model.Shoe {
	cards := make([]model.Card, 0, 52*deckCount)
	for d := 0; d < deckCount; d++ {
		for _, suit := range model.Suits {
			for _, rank := range model.Ranks {
				cards = append(cards, model.Card{Rank: rank, Suit: suit})
			}
		}
	}

	seed := serverSeed + "-" + clientSeed + "-0"
	for i := len(cards) - 1; i >= 1; i-- {
		j := fair.Int(seed, i, i+1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return model.Shoe{Cards: cards}
}

// shoeHash - хэш порядка карт. Публикуется вместе с обязательством
// по сиду: после раскрытия сида клиент пересобирает шуз и сверяет хэш
func shoeHash(shoe model.Shoe) string {
	codes := make([]string, len(shoe.Cards))
	for i, c := range shoe.Cards {
		codes[i] = c.Code()
	}
	return fair.Hash(strings.Join(codes, ","))
}

// draw выдает следующую карту из шуза.
// Исчерпание шуза при шестиколодной игре означает ошибку конфигурации,
// она не маскируется и не зацикливает курсор
func draw(shoe *model.Shoe) (model.Card, error) {
	if shoe.Cursor >= len(shoe.Cards) {
		return model.Card{}, service.ErrShoeDepleted
	}

	card := shoe.Cards[shoe.Cursor]
	shoe.Cursor++
	return card, nil
}
