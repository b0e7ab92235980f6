package main

import (
	"biblioteca-service/app"
	"biblioteca-service/pkg/observability"
)

func main() {
	observability.StartProfiling("biblioteca-service")
	app.Run()
}
