package exchange

import "github.com/KirkDiggler/fairdice/internal/models"

type SaveExchangeInput struct {
	Exchange *models.Exchange
}

type GetExchangeInput struct {
	ExchangeID string
}

type ListExchangesInput struct {
}

type ListExchangesOutput struct {
	Exchanges []*models.Exchange
}
