package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	logging "github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/groopm/groopm/binmanager"
	"github.com/groopm/groopm/cluster"
	"github.com/groopm/groopm/groopmlog"
	"github.com/groopm/groopm/profile"
)

// init overrides the default cli help template with an ASCII banner.
func init() {
	cli.AppHelpTemplate = `
   ____                        __  __
  / ___|_ __ ___   ___  _ __   |  \/  |
 | |  _| '__/ _ \ / _ \| '_ \  | |\/| |
 | |_| | | | (_) | (_) | |_) | | |  | |
  \____|_|  |_|\___/ \___/| .__/  |_|  |_|
                          |_|
` + cli.AppHelpTemplate
}

func main() {
	logging.SetBackend(groopmlog.BackendFormatter)

	app := cli.NewApp()
	app.Compiled = time.Now()
	app.Name = "groopm"
	app.Usage = "Density-based contig clustering for metagenomic binning"

	app.Commands = []cli.Command{
		{
			Name:  "bin",
			Usage: "Cluster contigs into genome bins",
			UsageText: `
	groopm bin <fasta> <sidecar> [options]

Bin function:
Given a FASTA assembly and a coverage/k-mer sidecar file, partition contigs
into density-based bins and write the assignment to a TSV file alongside
the input.
`,
			Flags: []cli.Flag{
				cli.IntFlag{Name: "cutoff", Value: 1500, Usage: "minimum contig length considered"},
				cli.IntFlag{Name: "num-maps", Value: 1, Usage: "number of projection views (1 or 3)"},
				cli.BoolFlag{Name: "force", Usage: "re-cluster even if already marked clustered"},
			},
			Action: binAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func binAction(c *cli.Context) error {
	if len(c.Args()) < 2 {
		cli.ShowSubcommandHelp(c)
		return cli.NewExitError("must specify fasta and sidecar files", 1)
	}

	fastaPath := c.Args().Get(0)
	sidecarPath := c.Args().Get(1)
	cutoff := c.Int("cutoff")
	numMaps := c.Int("num-maps")
	force := c.Bool("force")

	cfg := cluster.NewConfig(cluster.WithNumImgMaps(numMaps))

	binPath := strings.TrimSuffix(fastaPath, filepath.Ext(fastaPath)) + ".bins.tsv"
	store := profile.NewFASTAStore(fastaPath, sidecarPath, binPath, cfg.ScaleFactor)

	ctx := context.Background()
	if !force {
		clustered, err := store.IsClustered(ctx)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		if clustered {
			return cli.NewExitError("already clustered; pass --force to re-run", 1)
		}
	}

	mgr := binmanager.New(cfg.MinSize, cfg.MinVol)
	engine := cluster.NewEngine(cfg, store, mgr)

	summary, err := engine.MakeCores(ctx, cutoff)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Printf(
		"clustered %d of %d contigs (%.1f%%) into %d bins (%d restricted) over %d rounds; assignment written to %s\n",
		summary.ContigsBinned, summary.ContigsLoaded,
		100*float64(summary.ContigsBinned)/float64(summary.ContigsLoaded),
		summary.BinCount, summary.ContigsRestricted, summary.Rounds, binPath,
	)

	return nil
}
