// @title           WealthCoach API
// @version         1.0
// @description     Backend for the financial coaching platform.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /api/v1

package main

import "wealthcoach_backend/internal/app"

func main() {
	app.Run()
}
