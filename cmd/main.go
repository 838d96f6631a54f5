package main

import (
	"os"

	"github.com/aryan877/fit-track/config"
	"github.com/aryan877/fit-track/routes"
)

func main() {
	db := config.InitDB()
	defer config.Close(db)

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
