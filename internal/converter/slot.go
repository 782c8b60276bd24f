package converter

import (
	dto "casino_platform/internal/api/dto/slot"
	"casino_platform/internal/model"
)

func ToSlotSpin(req dto.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet:        req.Bet,
		ClientSeed: req.ClientSeed,
	}
}

func ToSpinResponse(res model.SlotSpinResult) dto.SpinResponse {
	resp := dto.SpinResponse{
		SpinID:    res.SpinID,
		Grid:      res.Grid,
		WinAmount: res.WinAmount,
		Balance:   res.Balance,
		ProvablyFair: dto.ProvablyFair{
			ServerSeed:     res.Fair.ServerSeed,
			ServerSeedHash: res.Fair.ServerSeedHash,
			PublicHash:     res.Fair.PublicHash,
			ClientSeed:     res.Fair.ClientSeed,
		},
	}

	if res.BestWin != nil {
		resp.BestWin = &dto.Win{
			Line:       res.BestWin.Line,
			Symbol:     res.BestWin.Symbol,
			Count:      res.BestWin.Count,
			Multiplier: res.BestWin.Multiplier,
		}
	}

	return resp
}
