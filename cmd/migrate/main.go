package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
)

func main() {
	var (
		direction = flag.String("direction", "up", "migration direction: up, down, or version")
		steps     = flag.Int("steps", 0, "number of steps (0 = all)")
		path      = flag.String("path", "migrations", "path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	m, err := migrate.New("file://"+*path, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer m.Close()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatalf("migrate: version: %v", verr)
		}
		fmt.Printf("version: %d dirty: %t\n", version, dirty)
		return
	default:
		log.Fatalf("migrate: unknown direction %q", *direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("migrate: done")
}
