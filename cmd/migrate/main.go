// file: cmd/migrate/main.go
//
// Runner migrasi skema. Pakai:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down 1
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"lesprivat_backend/internals/configs"
)

func main() {
	configs.LoadEnv()

	dbURL := configs.GetEnv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL belum di-set")
	}
	src := configs.GetEnvOr("MIGRATIONS_DIR", "file://internals/databases/migrations")

	m, err := migrate.New(src, dbURL)
	if err != nil {
		log.Fatalf("gagal membuka migrasi: %v", err)
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil || steps < 1 {
				log.Fatalf("jumlah step tidak valid: %q", os.Args[2])
			}
		}
		err = m.Steps(-steps)
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil {
			log.Fatalf("gagal membaca versi: %v", verr)
		}
		fmt.Printf("version=%d dirty=%v\n", v, dirty)
		return
	default:
		log.Fatalf("perintah tidak dikenal: %q (pakai up|down|version)", cmd)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("✅ Tidak ada migrasi baru")
		return
	}
	if err != nil {
		log.Fatalf("migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai")
}
