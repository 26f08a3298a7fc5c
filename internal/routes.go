package internal

import (
	"net/http"

	"newsd/internal/controllers"
	"newsd/internal/providers"
	"newsd/internal/structures"
)

func InitRoutes(cardController *controllers.CardController, visitController *controllers.VisitController, authController *controllers.AuthController, chatController *controllers.ChatController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()
	protected := authController.Require

	routers.Get("/cards", protected(http.HandlerFunc(cardController.GetCards)))
	routers.Post("/cards", protected(http.HandlerFunc(cardController.CreateCard)))
	routers.Put("/cards/{id}", protected(http.HandlerFunc(cardController.UpdateCard)))
	routers.Delete("/cards/{id}", protected(http.HandlerFunc(cardController.DeleteCard)))
	routers.Patch("/cards/{id}/toggle", protected(http.HandlerFunc(cardController.ToggleCard)))
	routers.Post("/publish", protected(http.HandlerFunc(cardController.Publish)))

	routers.Post("/visits", http.HandlerFunc(visitController.RecordVisit))
	routers.Get("/stats", http.HandlerFunc(visitController.GetStats))

	routers.Post("/login", http.HandlerFunc(authController.Login))
	routers.Post("/logout", http.HandlerFunc(authController.Logout))

	routers.Post("/chat", http.HandlerFunc(chatController.Chat))

	return routers
}
