package main

import (
	_ "github.com/francois2metz/siign/docs"
	"github.com/francois2metz/siign/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Siign API
// @version         1.0
// @description     Electronic signature of Tiime quotations through Docage.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
