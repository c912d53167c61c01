package pkg

import (
	"fmt"
	"net"

	"cargotrans/internal/app/config"
	"cargotrans/internal/app/handler"
	"cargotrans/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Сколько портов перебираем, если основной занят
const portFallbackAttempts = 10

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.APIHandler
	Auth    *middleware.AuthMiddleware
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, am *middleware.AuthMiddleware) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
		Auth:    am,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	// Регистрируем маршруты
	a.Handler.RegisterAPIRoutes(a.Router, a.Auth)

	// Если порт занят, пробуем следующий
	port := a.Config.ServicePort
	for attempt := 0; attempt < portFallbackAttempts; attempt++ {
		serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, port)

		listener, err := net.Listen("tcp", serverAddress)
		if err != nil {
			logrus.Warnf("Порт %d уже используется, пробуем %d", port, port+1)
			port++
			continue
		}

		logrus.Infof("Starting server on %s", serverAddress)
		if err := a.Router.RunListener(listener); err != nil {
			logrus.Fatal(err)
		}

		logrus.Info("Server down")
		return
	}

	logrus.Fatalf("не удалось найти свободный порт начиная с %d", a.Config.ServicePort)
}
