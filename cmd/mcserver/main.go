// Command mcserver runs the connection-accepting core: config load,
// logging setup, a fresh RSA keypair, Mojang session verification, and the
// accept loop (§4.6). It owns process lifecycle only; gameplay is out of
// scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-mclib/mcserver/crypto"
	"github.com/go-mclib/mcserver/internal/config"
	"github.com/go-mclib/mcserver/internal/logz"
	"github.com/go-mclib/mcserver/server"
	"github.com/go-mclib/mcserver/session"
	"github.com/go-mclib/mcserver/worldbackend"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "server.toml", "path to server.toml")
	connRate := flag.Float64("conn-rate", 50, "maximum new connections per second")
	connBurst := flag.Int("conn-burst", 100, "burst allowance for new connections")
	openIcon := flag.Bool("open-icon", false, "open the configured server icon in a browser and exit, for checking it rendered correctly")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcserver: %v\n", err)
		os.Exit(1)
	}

	if *openIcon {
		runOpenIcon(cfg)
		return
	}

	logger, err := logz.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcserver: logging setup: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *connRate, *connBurst); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger, connRate float64, connBurst int) error {
	keyPair, err := crypto.GenerateServerKeyPair()
	if err != nil {
		return fmt.Errorf("generate RSA keypair: %w", err)
	}

	manifest, err := worldbackend.LoadManifest(cfg.WorldsManifest)
	if err != nil {
		return fmt.Errorf("load worlds manifest: %w", err)
	}

	verifier := session.NewMojangVerifier()
	world := worldbackend.New(manifest)
	state := server.NewState(keyPair, cfg, logger, verifier, world)
	loop := server.NewAcceptLoop(state, connRate, connBurst)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(cfg.Address, strconv.Itoa(int(cfg.Port)))
	return loop.Run(ctx, addr)
}

// runOpenIcon is a debug aid: open the base64-encoded icon data URI in the
// operator's browser so they can confirm it rendered the way they expect
// before pointing real clients at it.
func runOpenIcon(cfg *config.Config) {
	if cfg.Listing.IconDataURI == "" {
		fmt.Fprintln(os.Stderr, "mcserver: no listing.icon configured")
		os.Exit(1)
	}
	if err := browser.OpenURL(cfg.Listing.IconDataURI); err != nil {
		fmt.Fprintf(os.Stderr, "mcserver: open icon: %v\n", err)
		os.Exit(1)
	}
}
