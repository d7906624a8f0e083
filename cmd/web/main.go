package main

import "jobstreet_backend/internal/app"

func main() {
	app.Run()
}
