package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"event-seating-tui/tui"
)

const appName = "event-seating-tui"

var (
	version = "dev"
	commit  = "none"
)

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func main() {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	venue := flags.String("venue", "venue.json", "venue document: a file path or an http(s) URL")
	interval := flags.Duration("interval", 3*time.Second, "base delay between live status updates")
	jitter := flags.Duration("jitter", 2*time.Second, "random extra delay added to each update")
	noLive := flags.Bool("no-live", false, "start with the live status feed disabled")
	showVersion := flags.BoolP("version", "v", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if *showVersion {
		printVersion()
		return
	}

	source := *venue
	if env := os.Getenv("EVENT_SEATING_VENUE"); env != "" && !flags.Changed("venue") {
		source = env
	}

	app := tui.New(tui.Options{
		Source:       source,
		FeedInterval: *interval,
		FeedJitter:   *jitter,
		Live:         !*noLive,
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
