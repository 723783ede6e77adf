package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RaffleStatus string

const (
	RaffleActive   RaffleStatus = "active"
	RaffleArchived RaffleStatus = "archived"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// PrizeList holds the ordered main prizes (place 1..k) and an optional
// bonus prize that is not part of the draw.
type PrizeList struct {
	Main  []string `json:"main"`
	Bonus string   `json:"bonus,omitempty"`
}

// MainPrizes returns the non-empty main prizes in place order.
func (p PrizeList) MainPrizes() []string {
	out := make([]string, 0, len(p.Main))
	for _, prize := range p.Main {
		if strings.TrimSpace(prize) != "" {
			out = append(out, prize)
		}
	}
	return out
}

// SaleRecord is the persisted fact that one ticket number was purchased.
// A multi-ticket purchase produces one record per number, sharing buyer
// identity, timestamp and payment status but each freezing its own amount.
type SaleRecord struct {
	Buyer   string          `json:"buyer"`
	Phone   string          `json:"phone"`
	SoldAt  time.Time       `json:"sold_at"`
	Amount  decimal.Decimal `json:"amount"`
	Payment PaymentStatus   `json:"payment"`
}

// Raffle is a single numbered-ticket sale event. Tickets maps a ticket
// number in [0, TotalTickets) to its sale record; an unsold ticket is
// absent from the map, never present with a zero record.
type Raffle struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Status         RaffleStatus       `json:"status"`
	DrawDate       time.Time          `json:"draw_date"`
	TotalTickets   int                `json:"total_tickets"`
	TicketPrice    decimal.Decimal    `json:"ticket_price"`
	SpecialPrice   decimal.Decimal    `json:"special_price"`
	SpecialNumbers []int              `json:"special_numbers"`
	Prizes         PrizeList          `json:"prizes"`
	PrizeCost      decimal.Decimal    `json:"prize_cost"`
	CreatedAt      time.Time          `json:"created_at"`
	Tickets        map[int]SaleRecord `json:"tickets"`
}

// IsSpecial reports whether n is priced at the premium rate.
func (r *Raffle) IsSpecial(n int) bool {
	for _, s := range r.SpecialNumbers {
		if s == n {
			return true
		}
	}
	return false
}

// Identity is the (name, phone) pair that identifies a buyer within a
// raffle.
type Identity struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Buyer is the identity captured by the sale-confirmation dialog.
type Buyer struct {
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Payment PaymentStatus `json:"payment"`
}

// Participant is a derived grouping of a buyer's tickets within one
// raffle. It is recomputed on demand and never persisted.
type Participant struct {
	RaffleID   uuid.UUID             `json:"raffle_id"`
	RaffleName string                `json:"raffle_name"`
	Name       string                `json:"name"`
	Phone      string                `json:"phone"`
	Tickets    []int                 `json:"tickets"`
	Payments   map[int]PaymentStatus `json:"payments"`
	Total      decimal.Decimal       `json:"total"`
}

// Winner is one entry of a draw result. Draw results are display-only
// and never written back to the ledger.
type Winner struct {
	Place  int    `json:"place"`
	Prize  string `json:"prize"`
	Name   string `json:"name"`
	Ticket int    `json:"ticket"`
}

// Summary is the financial summary of a single raffle.
type Summary struct {
	TicketsSold      int             `json:"tickets_sold"`
	TicketsRemaining int             `json:"tickets_remaining"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	Profit           decimal.Decimal `json:"profit"`
}

// RaffleRevenue is one row of the dashboard's top-raffles ranking.
type RaffleRevenue struct {
	RaffleID uuid.UUID       `json:"raffle_id"`
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DashboardStats aggregates every raffle in the collection, archived
// ones included in the totals just like the on-screen dashboard.
type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TicketsSold      int             `json:"tickets_sold"`
	TicketsTotal     int             `json:"tickets_total"`
	TicketsRemaining int             `json:"tickets_remaining"`
	ActiveRaffles    int             `json:"active_raffles"`
	TopRaffles       []RaffleRevenue `json:"top_raffles"`
}

// PendingSale is a quoted sale waiting for the operator to submit or
// cancel the confirmation dialog. It reserves nothing: the tickets are
// re-validated against the ledger when the sale is confirmed.
type PendingSale struct {
	ID        uuid.UUID       `json:"id"`
	RaffleID  uuid.UUID       `json:"raffle_id"`
	Numbers   []int           `json:"numbers"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// Settings is the operator/business configuration consumed by the
// receipt and formatting collaborators.
type Settings struct {
	CompanyName  string `json:"company_name"`
	CompanyID    string `json:"company_id"`
	CompanyPhone string `json:"company_phone"`
	Currency     string `json:"currency"`
	CountryCode  string `json:"country_code"`
	Rules        string `json:"rules"`
}

// DefaultSettings mirrors the defaults the operator sees before any
// configuration has been saved.
func DefaultSettings() Settings {
	return Settings{Currency: "DOP", CountryCode: "1"}
}

// TicketInfo is one cell of the ticket selection grid.
type TicketInfo struct {
	Number  int           `json:"number"`
	Label   string        `json:"label"`
	Sold    bool          `json:"sold"`
	Special bool          `json:"special"`
	Buyer   string        `json:"buyer,omitempty"`
	Payment PaymentStatus `json:"payment,omitempty"`
}

// Receipt is the data needed to render a purchase receipt for one
// participant. Rendering, printing and image export are external
// collaborators.
type Receipt struct {
	RaffleID   uuid.UUID       `json:"raffle_id"`
	RaffleName string          `json:"raffle_name"`
	Buyer      string          `json:"buyer"`
	Phone      string          `json:"phone"`
	Numbers    []int           `json:"numbers"`
	Total      decimal.Decimal `json:"total"`
	SoldAt     time.Time       `json:"sold_at"`
	DrawDate   time.Time       `json:"draw_date"`
	Prizes     PrizeList       `json:"prizes"`
	WhatsApp   string          `json:"whatsapp_url,omitempty"`
}
