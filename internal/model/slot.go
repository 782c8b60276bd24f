package model

// SlotSpin - запрос на спин слота
type SlotSpin struct {
	Bet        int
	ClientSeed string
}

// SlotWin - лучшее совпадение по линиям выплат
type SlotWin struct {
	Line       int
	Symbol     string
	Count      int
	Multiplier int
}

// SlotProof - данные проверяемой честности спина.
// Спин рассчитывается атомарно, поэтому серверный сид
// раскрывается сразу в результате
type SlotProof struct {
	ServerSeed     string
	ServerSeedHash string
	PublicHash     string
	ClientSeed     string
}

// SlotSpinResult - результат спина: поле, лучшее совпадение и выплата
type SlotSpinResult struct {
	SpinID    string
	Grid      [][]string
	BestWin   *SlotWin
	WinAmount int
	Balance   int
	Fair      SlotProof
}
