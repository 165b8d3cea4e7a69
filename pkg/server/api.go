package server

import (
	"fmt"

	handlers "github.com/TaskGlass/dreamvault/pkg/handlers/http"
	"github.com/TaskGlass/dreamvault/pkg/middleware"
	"github.com/sirupsen/logrus"

	"github.com/TaskGlass/dreamvault/pkg/config"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting api server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) Shutdown() error {
	return s.Router.Shutdown()
}

func (s *ApiServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RecoveryMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")

	// The webhook authenticates with a Stripe signature, not a user token.
	v1.Post("/billing/webhook", s.handlerTransport.StripeWebhookHandler.Handle)

	v1.Use(s.middlewareTransport.AuthMiddleware.Middleware())
	v1.Use(s.middlewareTransport.RateLimitMiddleware.Middleware())
	{
		dreams := v1.Group("/dreams")
		{
			dreams.Post("", s.handlerTransport.CreateDreamHandler.Handle)
			dreams.Get("", s.handlerTransport.ListDreamsHandler.Handle)
			dreams.Get("/:dream_id", s.handlerTransport.GetDreamHandler.Handle)
			dreams.Delete("/:dream_id", s.handlerTransport.DeleteDreamHandler.Handle)
			dreams.Post("/:dream_id/interpretation", s.handlerTransport.InterpretDreamHandler.Handle)
		}

		v1.Get("/horoscope/:sign", s.handlerTransport.GetHoroscopeHandler.Handle)
		v1.Get("/affirmation", s.handlerTransport.GetAffirmationHandler.Handle)
		v1.Get("/moon-phase", s.handlerTransport.GetMoonPhaseHandler.Handle)

		usage := v1.Group("/usage")
		{
			usage.Get("", s.handlerTransport.GetUsageHandler.Handle)
			usage.Post("/reset", s.handlerTransport.ResetUsageHandler.Handle)
		}

		billing := v1.Group("/billing")
		{
			billing.Post("/checkout", s.handlerTransport.BillingCheckoutHandler.Handle)
			billing.Post("/portal", s.handlerTransport.BillingPortalHandler.Handle)
		}
	}
}
