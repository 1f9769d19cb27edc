package routes

import (
	"poolbet/controllers/admin"
	"poolbet/controllers/ticket"
	"poolbet/controllers/user"
	"poolbet/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	userroutes := app.Group("/user")
	userroutes.Post("/register", user.RegisterUser)
	userroutes.Post("/balance", user.CheckUserBalance)
	userroutes.Post("/adjust", user.AdjustBalance)
	userroutes.Post("/transactions", user.ListTransactions)

	ticketroutes := app.Group("/ticket")
	ticketroutes.Post("/create", ticket.CreateTicket)
	ticketroutes.Post("/detail", ticket.TicketDetail)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Post("/fixtures/create", admin.CreateFixture)
	adminroutes.Post("/fixtures/result", admin.FixtureResult)
	adminroutes.Post("/tickets/settle", admin.ManualSettle)
}
