// @title           storerate API
// @version         1.0
// @description     REST API рейтингового сервиса магазинов (admin/owner/user).
// @host            localhost:4000
// @BasePath        /

package main

import "storerate_backend/internal/app"

func main() {
	app.Run()
}
