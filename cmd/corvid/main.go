// Command corvid is a UCI chess engine driving the search package
// through the uci protocol loop.
package main

import (
	"log"
	"os"

	"github.com/corvid-engine/corvid/uci"
)

func main() {
	logger := log.New(os.Stderr, "corvid: ", log.LstdFlags)
	uci.New(logger).Run()
}
