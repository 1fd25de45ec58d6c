package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/buyops-dev/creative-relay/pkg/cli/config"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
	"github.com/buyops-dev/creative-relay/pkg/utils/logging"
)

func cmdList() *cli.Command {
	var statusStr string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Creative status to list (pending, approved, rejected)",
			Value:       "pending",
			Destination: &statusStr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List creatives by review status",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			status, err := types.ParseCreativeStatus(statusStr)
			if err != nil {
				return goerr.Wrap(err, "invalid --status")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			creatives, err := repo.Creative().ListByStatus(ctx, status)
			if err != nil {
				return goerr.Wrap(err, "failed to list creatives", goerr.V("status", status))
			}

			statusColor := color.New(color.FgYellow)
			switch status {
			case types.CreativeStatusApproved:
				statusColor = color.New(color.FgGreen)
			case types.CreativeStatusRejected:
				statusColor = color.New(color.FgRed)
			}

			for _, creative := range creatives {
				fmt.Printf("%s  %s  %s  %q (%d images)\n",
					creative.CreatedAt.Format("2006-01-02 15:04"),
					statusColor.Sprint(creative.Status),
					creative.ID,
					creative.Description,
					len(creative.Images),
				)
			}
			fmt.Printf("%d creatives\n", len(creatives))

			return nil
		},
	}
}
