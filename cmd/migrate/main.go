// Command migrate applies the embedded SQL migrations.
//
//	migrate [-env .env] up|down|status|version|redo|reset|up-to VERSION|down-to VERSION
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"vendorflow/cmd"
	"vendorflow/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-env file] command [args]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err = migrations.Run(context.Background(), db, flag.Arg(0), flag.Args()[1:]...); err != nil {
		log.Fatalf("%v", err)
	}
}
