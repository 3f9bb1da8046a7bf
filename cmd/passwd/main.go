// Command passwd prints a bcrypt hash for the seeded admin password.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/passwd"
)

func main() {
	cost := flag.Int("b", cryptox.DefaultCost, "bcrypt cost")
	flag.Parse()

	if err := passwd.Run(os.Stderr, os.Stdout, *cost); err != nil {
		log.Fatalf("%v", err)
	}
}
