package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/andresmdz/rifa-go/internal/domain"
	"github.com/andresmdz/rifa-go/internal/ledger"
	"github.com/andresmdz/rifa-go/internal/service"
	"github.com/andresmdz/rifa-go/internal/service/draw"
	"github.com/andresmdz/rifa-go/internal/service/query"
	"github.com/andresmdz/rifa-go/internal/service/raffles"
	"github.com/andresmdz/rifa-go/internal/service/sales"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health + metrics
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// raffle collection
	r.POST("/raffles", handleCreateRaffle(svcs))
	r.GET("/raffles", handleListRaffles(svcs))
	r.GET("/raffles/:id", handleGetRaffle(svcs))
	r.PATCH("/raffles/:id", handleUpdateRaffle(svcs))
	r.POST("/raffles/:id/archive", handleArchiveRaffle(svcs))

	// ticket views
	r.GET("/raffles/:id/tickets", handleListTickets(svcs))
	r.GET("/raffles/:id/available", handleAvailable(svcs))
	r.GET("/raffles/:id/summary", handleSummary(svcs))
	r.GET("/dashboard", handleDashboard(svcs))

	// sales
	r.POST("/raffles/:id/sales", handleSell(svcs))
	r.POST("/raffles/:id/sales/random", handleSellRandom(svcs))
	r.POST("/raffles/:id/sales/open", handleOpenSale(svcs))
	r.POST("/sales/pending/:id/confirm", handleConfirmSale(svcs))
	r.DELETE("/sales/pending/:id", handleCancelSale(svcs))

	// participants
	r.GET("/raffles/:id/participants", handleParticipants(svcs))
	r.GET("/participants", handleGlobalParticipants(svcs))
	r.PATCH("/raffles/:id/participants", handleEditParticipant(svcs))
	r.GET("/raffles/:id/receipt", handleReceipt(svcs))

	// draw
	r.POST("/raffles/:id/draw", handleDraw(svcs))

	// working raffle
	r.GET("/selection", handleGetSelection(svcs))
	r.PUT("/selection/:id", handleSetSelection(svcs))
	r.DELETE("/selection", handleClearSelection(svcs))

	// settings
	r.GET("/settings", handleGetSettings(svcs))
	r.PUT("/settings", handleSaveSettings(svcs))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Create raffle
// @Param    req body  CreateRaffleRequest true "payload"
// @Success  201 {object} domain.Raffle
// @Failure  400 {object} ErrorResponse
// @Router   /raffles [post]
func handleCreateRaffle(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRaffleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		drawDate, err := parseRFC3339(req.DrawDate)
		if err != nil {
			badRequest(c, "invalid draw_date (RFC3339)")
			return
		}

		raffle, err := svcs.Raffles.Create(c.Request.Context(), raffles.CreateInput{
			Name:          req.Name,
			DrawDate:      drawDate,
			TotalTickets:  req.TotalTickets,
			TicketPrice:   req.TicketPrice,
			SpecialPrice:  req.SpecialPrice,
			SpecialMethod: ledger.SpecialMethod(req.SpecialMethod),
			SpecialCount:  req.SpecialCount,
			Prizes:        req.Prizes.toDomain(),
			PrizeCost:     req.PrizeCost,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, raffle)
	}
}

// @Summary  List raffles
// @Param    include_archived  query  bool  false  "include archived raffles"
// @Success  200  {array}  domain.Raffle
// @Router   /raffles [get]
func handleListRaffles(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		includeArchived := c.Query("include_archived") == "true"
		list, err := svcs.Raffles.List(c.Request.Context(), includeArchived)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary  Get raffle
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  200  {object}  domain.Raffle
// @Failure  404  {object}  ErrorResponse
// @Router   /raffles/{id} [get]
func handleGetRaffle(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		raffle, err := svcs.Raffles.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, raffle)
	}
}

// @Summary  Edit raffle attributes
// @Param    id   path  string  true  "Raffle ID (uuid)"
// @Param    req  body  UpdateRaffleRequest true "payload"
// @Success  200  {object}  domain.Raffle
// @Failure  404  {object}  ErrorResponse
// @Router   /raffles/{id} [patch]
func handleUpdateRaffle(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req UpdateRaffleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		in := raffles.UpdateInput{
			Name:      req.Name,
			PrizeCost: req.PrizeCost,
		}
		if req.DrawDate != nil {
			d, err := parseRFC3339(*req.DrawDate)
			if err != nil {
				badRequest(c, "invalid draw_date (RFC3339)")
				return
			}
			in.DrawDate = &d
		}
		if req.Prizes != nil {
			p := req.Prizes.toDomain()
			in.Prizes = &p
		}

		raffle, err := svcs.Raffles.Update(c.Request.Context(), id, in)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, raffle)
	}
}

// @Summary  Archive raffle
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /raffles/{id}/archive [post]
func handleArchiveRaffle(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Raffles.Archive(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List ticket grid cells
// @Param    id     path   string  true  "Raffle ID (uuid)"
// @Param    limit  query  int     false "page size"
// @Param    offset query  int     false "offset"
// @Success  200  {object}  query.TicketPage
// @Router   /raffles/{id}/tickets [get]
func handleListTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		page, err := svcs.Query.Tickets(c.Request.Context(), id, offset, limit)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, page, "public, max-age=5", true)
	}
}

// @Summary  List unsold ticket numbers
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  200  {array}  int
// @Router   /raffles/{id}/available [get]
func handleAvailable(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		numbers, err := svcs.Query.Available(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, numbers)
	}
}

// @Summary  Raffle financial summary
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  200  {object}  domain.Summary
// @Router   /raffles/{id}/summary [get]
func handleSummary(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		summary, err := svcs.Query.Summary(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, summary, "public, max-age=15", true)
	}
}

// @Summary  Cross-raffle dashboard
// @Success  200  {object}  domain.DashboardStats
// @Router   /dashboard [get]
func handleDashboard(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svcs.Query.Dashboard(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, stats, "public, max-age=15", true)
	}
}

// @Summary  Sell tickets (idempotent)
// @Param    id   path  string  true  "Raffle ID (uuid)"
// @Param    req  body  SellRequest true "payload"
// @Header   201  {string} Idempotency-Key "echo"
// @Success  201  {object} sales.Receipt
// @Failure  409  {object} ErrorResponse "tickets already sold"
// @Failure  429  {object} ErrorResponse "rate limited"
// @Router   /raffles/{id}/sales [post]
func handleSell(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req SellRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))

		rcpt, err := svcs.Sales.Sell(c.Request.Context(), id, sales.SellInput{
			Numbers: req.Numbers,
			Buyer:   buyerFrom(req.Buyer, req.Phone, req.Payment),
		}, idemKey)
		if err != nil {
			respondErr(c, err)
			return
		}
		if idemKey != "" {
			c.Header("Idempotency-Key", idemKey)
		}
		c.JSON(http.StatusCreated, rcpt)
	}
}

// @Summary  Sell random tickets
// @Param    id   path  string  true  "Raffle ID (uuid)"
// @Param    req  body  SellRandomRequest true "payload"
// @Success  201  {object} sales.Receipt
// @Failure  409  {object} ErrorResponse "not enough tickets"
// @Router   /raffles/{id}/sales/random [post]
func handleSellRandom(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req SellRandomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		rcpt, err := svcs.Sales.SellRandom(
			c.Request.Context(),
			id,
			req.Quantity,
			buyerFrom(req.Buyer, req.Phone, req.Payment),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, rcpt)
	}
}

// @Summary  Open a pending sale (confirmation dialog)
// @Param    id   path  string  true  "Raffle ID (uuid)"
// @Param    req  body  OpenSaleRequest true "payload"
// @Success  201  {object} domain.PendingSale
// @Failure  409  {object} ErrorResponse "tickets already sold"
// @Router   /raffles/{id}/sales/open [post]
func handleOpenSale(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req OpenSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sale, err := svcs.Sales.Open(c.Request.Context(), id, req.Numbers)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}

// @Summary  Confirm a pending sale
// @Param    id   path  string  true  "Pending sale ID (uuid)"
// @Param    req  body  ConfirmSaleRequest true "payload"
// @Success  201  {object} sales.Receipt
// @Failure  404  {object} ErrorResponse "pending sale not found"
// @Failure  409  {object} ErrorResponse "tickets sold while dialog was open"
// @Router   /sales/pending/{id}/confirm [post]
func handleConfirmSale(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req ConfirmSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		rcpt, err := svcs.Sales.Confirm(
			c.Request.Context(),
			id,
			buyerFrom(req.Buyer, req.Phone, req.Payment),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, rcpt)
	}
}

// @Summary  Cancel a pending sale
// @Param    id  path  string  true  "Pending sale ID (uuid)"
// @Success  204
// @Router   /sales/pending/{id} [delete]
func handleCancelSale(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Sales.Cancel(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List participants of one raffle
// @Param    id      path   string  true  "Raffle ID (uuid)"
// @Param    filter  query  string  false "name, phone or ticket label"
// @Success  200  {array}  domain.Participant
// @Router   /raffles/{id}/participants [get]
func handleParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		list, err := svcs.Query.Participants(c.Request.Context(), id, c.Query("filter"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary  List participants across non-archived raffles
// @Param    filter  query  string  false "name, phone or ticket label"
// @Success  200  {array}  domain.Participant
// @Router   /participants [get]
func handleGlobalParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svcs.Query.GlobalParticipants(c.Request.Context(), c.Query("filter"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary  Edit a participant's identity
// @Param    id   path  string  true  "Raffle ID (uuid)"
// @Param    req  body  EditParticipantRequest true "payload"
// @Success  200  {object}  EditParticipantResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /raffles/{id}/participants [patch]
func handleEditParticipant(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req EditParticipantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		count, err := svcs.Sales.EditParticipant(
			c.Request.Context(),
			id,
			domain.Identity{Name: req.Old.Name, Phone: req.Old.Phone},
			domain.Identity{Name: req.Updated.Name, Phone: req.Updated.Phone},
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, EditParticipantResponse{Updated: count})
	}
}

// @Summary  Participant receipt with WhatsApp link
// @Param    id     path   string  true  "Raffle ID (uuid)"
// @Param    name   query  string  true  "buyer name"
// @Param    phone  query  string  false "buyer phone"
// @Success  200  {object}  domain.Receipt
// @Failure  404  {object}  ErrorResponse
// @Router   /raffles/{id}/receipt [get]
func handleReceipt(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		name := c.Query("name")
		if name == "" {
			badRequest(c, "name is required")
			return
		}
		rcpt, err := svcs.Query.Receipt(c.Request.Context(), id, domain.Identity{
			Name:  name,
			Phone: c.Query("phone"),
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, rcpt)
	}
}

// @Summary  Run the prize draw
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  200  {object}  draw.Result
// @Failure  409  {object}  DrawBlockedResponse "revenue target not reached / not enough participants"
// @Router   /raffles/{id}/draw [post]
func handleDraw(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		result, err := svcs.Draw.Run(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// @Summary  Get the working raffle
// @Success  200  {object}  domain.Raffle
// @Failure  404  {object}  ErrorResponse "no raffle selected"
// @Router   /selection [get]
func handleGetSelection(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		raffle, err := svcs.Raffles.Selected(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, raffle)
	}
}

// @Summary  Select the working raffle
// @Param    id  path  string  true  "Raffle ID (uuid)"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse "raffle is archived"
// @Router   /selection/{id} [put]
func handleSetSelection(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Raffles.Select(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Clear the working raffle
// @Success  204
// @Router   /selection [delete]
func handleClearSelection(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Raffles.ClearSelection(c.Request.Context()); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Get operator settings
// @Success  200  {object}  domain.Settings
// @Router   /settings [get]
func handleGetSettings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svcs.Raffles.Settings(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// @Summary  Save operator settings
// @Param    req  body  domain.Settings  true  "payload"
// @Success  204
// @Router   /settings [put]
func handleSaveSettings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings domain.Settings
		if err := c.ShouldBindJSON(&settings); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Raffles.SaveSettings(c.Request.Context(), settings); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- Helpers ---

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	// draw preconditions carry numbers the operator needs
	var revErr ledger.InsufficientRevenueError
	if errors.As(err, &revErr) {
		c.JSON(http.StatusConflict, DrawBlockedResponse{
			Error:     revErr.Error(),
			Revenue:   revErr.Revenue,
			Required:  revErr.Required,
			Shortfall: revErr.Shortfall,
		})
		return
	}

	var soldErr ledger.AlreadySoldError
	if errors.As(err, &soldErr) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: soldErr.Error()})
		return
	}
	var notEnough ledger.NotEnoughTicketsError
	if errors.As(err, &notEnough) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: notEnough.Error()})
		return
	}
	var fewErr ledger.InsufficientParticipantsError
	if errors.As(err, &fewErr) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: fewErr.Error()})
		return
	}

	switch {
	// ledger preconditions
	case errors.Is(err, ledger.ErrNoParticipants):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "no tickets sold"})

	// raffles service
	case errors.Is(err, raffles.ErrRaffleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "raffle not found"})
	case errors.Is(err, raffles.ErrRaffleArchived):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "raffle is archived"})
	case errors.Is(err, raffles.ErrNoSelection):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no raffle selected"})
	case errors.Is(err, raffles.ErrInvalidRaffle):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// sales service
	case errors.Is(err, sales.ErrRaffleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "raffle not found"})
	case errors.Is(err, sales.ErrRaffleArchived):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "raffle is archived"})
	case errors.Is(err, sales.ErrPendingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "pending sale not found"})
	case errors.Is(err, sales.ErrRateLimited):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
	case errors.Is(err, sales.ErrInFlight):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "request already in flight"})
	case errors.Is(err, sales.ErrInvalidSale):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// query service
	case errors.Is(err, query.ErrRaffleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "raffle not found"})
	case errors.Is(err, query.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "participant not found"})

	// draw service
	case errors.Is(err, draw.ErrRaffleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "raffle not found"})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
