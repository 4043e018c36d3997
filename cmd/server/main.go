// Server-only entry point, for deployments that run migrations separately
// and just want the HTTP process.
package main

import (
	"log"

	"github.com/launchbase/launchbase/internal/server"

	_ "github.com/launchbase/launchbase/database/migrations"
	_ "github.com/launchbase/launchbase/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
