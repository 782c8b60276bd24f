package model

// Card - игральная карта. Ранг определяет стоимость, масть декоративна
type Card struct {
	Rank string
	Suit string
}

// Code - короткий код карты вида "AS", "10H"
func (c Card) Code() string {
	return c.Rank + c.Suit
}

// Масти в каноническом порядке колоды
var Suits = []string{"S", "H", "D", "C"}

// Ранги в каноническом порядке колоды
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// RankValue - стоимость ранга для блэкджека.
// Туз считается как 11 (мягко), картинки как 10
func RankValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	case "7":
		return 7
	case "8":
		return 8
	case "9":
		return 9
	default:
		return 0
	}
}
