package httpgin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresmdz/rifa-go/internal/domain"
)

type CreateRaffleRequest struct {
	Name          string          `json:"name" binding:"required"`
	DrawDate      string          `json:"draw_date" binding:"required"`
	TotalTickets  int             `json:"total_tickets" binding:"required,gt=0"`
	TicketPrice   decimal.Decimal `json:"ticket_price" binding:"required"`
	SpecialPrice  decimal.Decimal `json:"special_price"`
	SpecialMethod string          `json:"special_method"`
	SpecialCount  int             `json:"special_count"`
	Prizes        PrizesInput     `json:"prizes" binding:"required"`
	PrizeCost     decimal.Decimal `json:"prize_cost"`
}

type PrizesInput struct {
	Main  []string `json:"main" binding:"required,min=1"`
	Bonus string   `json:"bonus"`
}

type UpdateRaffleRequest struct {
	Name      *string          `json:"name"`
	DrawDate  *string          `json:"draw_date"`
	Prizes    *PrizesInput     `json:"prizes"`
	PrizeCost *decimal.Decimal `json:"prize_cost"`
}

type SellRequest struct {
	Numbers []int  `json:"numbers" binding:"required,min=1"`
	Buyer   string `json:"buyer" binding:"required"`
	Phone   string `json:"phone"`
	Payment string `json:"payment"`
}

type SellRandomRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Buyer    string `json:"buyer" binding:"required"`
	Phone    string `json:"phone"`
	Payment  string `json:"payment"`
}

type OpenSaleRequest struct {
	Numbers []int `json:"numbers" binding:"required,min=1"`
}

type ConfirmSaleRequest struct {
	Buyer   string `json:"buyer" binding:"required"`
	Phone   string `json:"phone"`
	Payment string `json:"payment"`
}

type EditParticipantRequest struct {
	Old     IdentityInput `json:"old" binding:"required"`
	Updated IdentityInput `json:"updated" binding:"required"`
}

type IdentityInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DrawBlockedResponse reports why a draw was refused, with the numbers
// the operator needs to fix it.
type DrawBlockedResponse struct {
	Error     string          `json:"error"`
	Revenue   decimal.Decimal `json:"revenue,omitempty"`
	Required  decimal.Decimal `json:"required,omitempty"`
	Shortfall decimal.Decimal `json:"shortfall,omitempty"`
}

type EditParticipantResponse struct {
	Updated int `json:"updated"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func (p PrizesInput) toDomain() domain.PrizeList {
	return domain.PrizeList{Main: p.Main, Bonus: p.Bonus}
}

func buyerFrom(name, phone, payment string) domain.Buyer {
	return domain.Buyer{
		Name:    name,
		Phone:   phone,
		Payment: domain.PaymentStatus(payment),
	}
}
