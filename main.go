package main

import (
	"log"

	"api/config"
	"api/database"
	"api/middleware"
	"api/realtime"
	"api/routes"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Heist Party API
// @version 1.0
// @description Riddle-gated party invitation backend: puzzle locks, RSVPs, and a best-effort Google Sheets mirror
// @BasePath /api
func main() {
	config.LoadConfig()

	database.InitDB()
	database.InitCache()

	services.Sheets = services.NewSheetsService()

	middleware.UpdateSystemMetrics()
	go realtime.HandleBroadcasts()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	routes.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Println("Listening on port " + config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
