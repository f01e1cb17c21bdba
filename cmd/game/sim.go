package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/app"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
)

var (
	flagDuration  float64
	flagStep      float64
	flagAutoSpend bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a window at a fixed step, walking the player in a
circle, and print a summary. Two runs with the same seed print the same report.

Examples:
  game sim
  game sim --duration 600 --seed 3
  game sim --auto-spend=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagDuration, "duration", 180, "Seconds of game time to simulate")
	simCmd.Flags().Float64Var(&flagStep, "step", 1.0/60, "Fixed step in seconds")
	simCmd.Flags().BoolVar(&flagAutoSpend, "auto-spend", true, "Spend crystals and upgrade points automatically")
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF9F43"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8395A7")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5F6FA"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#576574")).
			Padding(0, 2)
)

func runSim(cmd *cobra.Command, args []string) error {
	settings, lib, err := loadRun()
	if err != nil {
		return err
	}
	g, err := app.NewGame(settings, lib)
	if err != nil {
		return err
	}
	rec := event.NewRecorder(g.EventDispatcher)

	frames := g.Simulate(flagDuration, flagStep, app.CircleSteering, flagAutoSpend)
	log.Info("simulation finished", "frames", frames, "over", g.IsOver())

	fmt.Println(report(g.Snapshot(), rec, settings.Seed))
	return nil
}

func report(s app.Snapshot, rec *event.Recorder, seed int64) string {
	outcome := "survived"
	if s.GameOver {
		outcome = "died"
	}
	rows := [][2]string{
		{"seed", fmt.Sprint(seed)},
		{"outcome", outcome},
		{"time", fmt.Sprintf("%.1fs", s.Time)},
		{"level", fmt.Sprint(s.Player.Level)},
		{"kills", fmt.Sprint(s.Kills)},
		{"enemies alive", fmt.Sprint(len(s.Enemies))},
		{"damage taken", fmt.Sprint(rec.Counts[event.PlayerDamaged], " hits")},
		{"crystals picked", fmt.Sprint(rec.Counts[event.CrystalCollected])},
		{"champions", fmt.Sprint(rec.Counts[event.ChampionFused])},
		{"casts", fmt.Sprint(rec.Counts[event.PowerCast])},
	}
	var crystals []string
	for _, cat := range defs.Categories {
		crystals = append(crystals, fmt.Sprintf("%s %d", cat, s.Player.Crystals[cat]))
	}
	rows = append(rows, [2]string{"crystals held", strings.Join(crystals, ", ")})
	for _, p := range s.Powers {
		rows = append(rows, [2]string{p.Name, fmt.Sprintf("level %d/%d", p.Level, p.MaxLevel)})
	}

	lines := []string{titleStyle.Render("Run report"), ""}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
