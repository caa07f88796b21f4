package main

import (
	"github.com/spf13/cobra"

	"github.com/jbickler/termgrid/internal/config"
	"github.com/jbickler/termgrid/internal/tui/demo"
	"github.com/jbickler/termgrid/internal/ui/components"
)

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Print a static rendering of every widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runShowcase(cmd, cfg)
		},
	}
}

func runShowcase(cmd *cobra.Command, cfg *config.Config) error {
	theme := components.DefaultTheme()
	if cfg.Theme == "dark" {
		theme = components.DarkTheme()
	}
	ctx := components.DefaultContext().WithTheme(theme)

	out := components.VStack(
		components.TitleText("termgrid showcase"),
		components.SubtitleText("theme: "+cfg.Theme),
		components.NewDivider(),
		badgeRow(),
		components.NewDivider(),
		inputSample(),
		components.NewDivider(),
		gridSample(cfg),
	).WithGap(1)

	cmd.Println(out.ViewWithContext(ctx))
	return nil
}

func badgeRow() *components.Stack {
	return components.HStack(
		components.PrimaryBadge("primary"),
		components.SuccessBadge("success"),
		components.WarningBadge("warning"),
		components.DangerBadge("danger"),
		components.InfoBadge("info"),
	).WithGap(1)
}

func inputSample() *components.Panel {
	valid := components.NewTextInput("Name").
		WithPlaceholder("Ada Lovelace").
		WithRequired(true).
		WithHelp("Shown focused and valid")

	invalid := components.NewTextInput("Email").
		WithRequired(true).
		WithRule("email")
	invalid.SetValue("not-an-email")
	_ = invalid.Validate()

	return components.NewPanel(valid, invalid).WithTitle("Text inputs")
}

func gridSample(cfg *config.Config) *components.Panel {
	g := demo.NewGrid(cfg)
	g.CycleSort("name")
	return components.NewPanel(components.NewText(g.View())).WithTitle("Data grid")
}
