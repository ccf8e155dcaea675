package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/maxov/hamster/hamt"
)

var log = logging.MustGetLogger("hamster")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{level}] %{message}`,
)

type Options struct {
	Count   int  `short:"n" long:"count" default:"6" description:"number of keys to insert"`
	Verbose bool `short:"v" long:"verbose" description:"dump the trie structure after building"`
}

func main() {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, stdoutLogFormat))

	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if opts.Count < 1 {
		log.Error("count must be at least 1")
		os.Exit(1)
	}

	m := hamt.New[int, int]()
	for k := 1; k <= opts.Count; k++ {
		m = m.Insert(k, -k)
	}
	log.Infof("built %s", m)

	for k := 1; k <= opts.Count; k++ {
		v, ok := m.Get(k)
		if !ok {
			log.Errorf("key %d missing after insert", k)
			os.Exit(1)
		}
		fmt.Printf("key: %d value: %d\n", k, v)
	}

	if opts.Verbose {
		fmt.Print(m.Dump())
	}
}
