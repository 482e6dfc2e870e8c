package main

import (
	"log"
	"os"

	"github.com/viant/mifos-mcp/app"
	_ "github.com/viant/scy/kms/blowfish"
)

func main() {
	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
