package pkg

import (
	"log"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
)

func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

// SessionName returns a readable id like "wired-heron"
func SessionName() string {
	return petname.Generate(2, "-")
}
