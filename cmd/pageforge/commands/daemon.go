package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageforge/pageforge/internal/daemon"
)

// DaemonCmd implements the 'daemon' command.
type DaemonCmd struct {
	Output      string        `short:"o" help:"Output directory for generated artifacts" default:"./dist"`
	Interval    time.Duration `help:"Also regenerate on a fixed interval (0 disables)"`
	Debounce    time.Duration `default:"2s" help:"Delay after a configuration change before regenerating"`
	PreviewAddr string        `name:"preview-addr" default:"localhost:8085" help:"Preview server listen address (empty disables)" env:"PAGEFORGE_PREVIEW_ADDR"`
	NATSURL     string        `name:"nats-url" help:"NATS server URL for generation events (empty disables)" env:"PAGEFORGE_NATS_URL"`
}

func (d *DaemonCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dm, err := daemon.New(daemon.Options{
		ConfigPath:    root.Config,
		OutputDir:     d.Output,
		ComponentsDir: root.Library,
		Interval:      d.Interval,
		Debounce:      d.Debounce,
		PreviewAddr:   d.PreviewAddr,
		NATSURL:       d.NATSURL,
		HistoryPath:   root.HistoryDB,
	})
	if err != nil {
		return err
	}

	return dm.Run(ctx)
}
