package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tavolo-app/backend/config"
	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/middlewares"
	"github.com/tavolo-app/backend/router"
	"github.com/tavolo-app/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	gw, err := buildGateway()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up record gateway: %v", err)
	}

	r := router.SetupRouter(gw)

	// 50 requests per second per IP across the whole API
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func buildGateway() (gateway.RecordGateway, error) {
	mode := config.GatewayMode()
	if mode == config.GatewayModeRemote {
		client := gateway.NewClientFromEnv()
		if err := client.ValidateConfig(); err != nil {
			utils.ErrorLogger.Printf("Warning: record store config incomplete: %v", err)
		}
		return client, nil
	}

	db, err := config.OpenLocalDB(mode)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Using local %s record gateway", mode)
	return gateway.NewLocalGateway(db)
}
