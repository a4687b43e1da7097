package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"peerbook/internal/config"
	"peerbook/internal/contact"
	"peerbook/internal/node"
)

func main() {
	var (
		id             = flag.String("id", "", "contact id of this node (generated if empty)")
		host           = flag.String("host", "127.0.0.1", "host this node is reachable on")
		port           = flag.Int("port", 9000, "port to listen on")
		peers          = flag.String("peers", "", "seed contacts as id=host:port,...")
		restoreTimeout = flag.Duration("restore-timeout", config.DefaultRestoreTimeout, "how long an unreachable contact is kept before eviction")
		probeInterval  = flag.Duration("probe-interval", config.DefaultProbeInterval, "how often inactive contacts are pinged")
		notifyInterval = flag.Duration("notify-interval", config.DefaultNotifyInterval, "how often queued messages are handed to the handler")
	)
	flag.Parse()

	if *id == "" {
		*id = contact.NewID("")
	}

	seed, err := config.ParsePeers(*peers)
	if err != nil {
		log.Fatalf("Invalid -peers: %v", err)
	}

	cfg := config.Config{
		RestoreTimeout: *restoreTimeout,
		ProbeInterval:  *probeInterval,
		NotifyInterval: *notifyInterval,
	}

	self := contact.New(*id, *host, *port)
	n := node.NewNode(self, seed, cfg)
	if err := n.Start(); err != nil {
		log.Fatalf("Failed to start node: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	n.Stop()
}
