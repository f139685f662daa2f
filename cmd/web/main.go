package main

import "devfolio_backend/internal/app"

func main() {
	app.Run()
}
