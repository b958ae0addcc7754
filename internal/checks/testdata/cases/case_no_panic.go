package cases

import (
	"log"
	"os"
)

func mustParse(raw string) int {
	if raw == "" {
		panic("empty input")
	}

	return len(raw)
}

func main() {
	if len(os.Args) == 1 {
		os.Exit(2)
	}

	go func() {
		log.Fatalf("worker died")
	}()
}

func init() {
	panic("fine here")
}
