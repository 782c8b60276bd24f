package model

// Coord - координата ячейки поля
type Coord struct {
	Row int
	Col int
}

// PayLines - девять фиксированных линий выплат: прямые и зигзаги
// по четыре ячейки. Порядок линий значим: при равных множителях
// выигрывает первая найденная
var PayLines = [][]Coord{
	{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, // центр
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, // верх
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}}, // низ
	{{0, 0}, {1, 1}, {2, 2}, {1, 3}}, // галочка вниз
	{{2, 0}, {1, 1}, {0, 2}, {1, 3}}, // галочка вверх
	{{0, 1}, {1, 2}, {0, 3}, {1, 4}}, // зигзаг верхний
	{{2, 1}, {1, 2}, {2, 3}, {1, 4}}, // зигзаг нижний
	{{1, 1}, {1, 2}, {1, 3}, {1, 4}}, // центр со сдвигом
	{{0, 0}, {0, 1}, {1, 2}, {2, 3}}, // диагональный спуск
}
