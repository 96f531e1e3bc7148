package main

import (
	"flag"
	"log"
	"os"

	"github.com/minivm/lc3/console"
	"github.com/minivm/lc3/emulator"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: no image files", os.Args[0])
	}

	term := console.NewTerminal()

	emu := emulator.NewEmulator(term)
	emu.Verbose = verbose

	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		err = emu.LoadImage(data)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	err := term.Start()
	if err != nil {
		log.Fatalf("console: %v", err)
	}
	defer term.Stop()

	err = emu.Run()
	if err != nil {
		term.Stop()
		log.Fatal(err)
	}
}
