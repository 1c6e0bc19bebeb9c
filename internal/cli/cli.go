package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/cache"
	"github.com/confscout/eventscout/internal/calendar"
	"github.com/confscout/eventscout/internal/config"
	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/fetcher"
	"github.com/confscout/eventscout/internal/logger"
	"github.com/confscout/eventscout/internal/notifier"
	"github.com/confscout/eventscout/internal/scheduler"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagVerbose bool

	flagLocation     string
	flagMinRelevance float64
	flagEventType    string

	flagCron  string
	flagTweet bool

	flagSort string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventscout",
		Short: "Discover and rank cloud native conference events",
		Long: `Scrapes Linux Foundation, CNCF, and KubeCon event listings, scores them
for cloud native relevance, and reports the ranked results.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().StringVar(&flagSort, "sort", "relevance", "Display order: relevance, date, or title")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Verbose output and debug logging")

	cmd.AddCommand(newDiscoverCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newDetailsCmd())
	cmd.AddCommand(newCalendarCmd())
	cmd.AddCommand(newWatchCmd())

	return cmd
}

func newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Run a discovery pass and print the ranked events",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			resp := a.Discover(cmd.Context())
			return writeDiscovery(resp)
		},
	}
}

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the current events by location, relevance, or type",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			filters := map[string]interface{}{}
			if flagLocation != "" {
				filters["location"] = flagLocation
			}
			if flagMinRelevance > 0 {
				filters["min_relevance"] = flagMinRelevance
			}
			if flagEventType != "" {
				filters["event_type"] = flagEventType
			}

			resp := a.Filter(cmd.Context(), filters)
			return writeDiscovery(resp)
		},
	}

	cmd.Flags().StringVar(&flagLocation, "location", "", "Substring match on event location")
	cmd.Flags().Float64Var(&flagMinRelevance, "min-relevance", 0, "Minimum relevance score")
	cmd.Flags().StringVar(&flagEventType, "event-type", "", "Exact match on event type")

	return cmd
}

func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <event-id>",
		Short: "Show one event with scholarship and travel funding info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			resp := a.Details(cmd.Context(), args[0])
			if resp["success"] != true {
				return fmt.Errorf("%v", resp["error"])
			}

			details := resp["event"].(*agent.EventDetails)
			return WriteDetails(os.Stdout, details, parseFormat())
		},
	}
}

func newCalendarCmd() *cobra.Command {
	var flagOut string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export the current events as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			resp := a.Discover(cmd.Context())
			if resp["success"] != true {
				return fmt.Errorf("%v", resp["error"])
			}
			events, _ := resp["events"].([]*event.Event)

			ics := calendar.GenerateICS(events, "Cloud Native Events")
			if flagOut == "" {
				fmt.Fprint(os.Stdout, ics)
				return nil
			}
			if err := os.WriteFile(flagOut, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", flagOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagOut, "out", "", "Write the calendar to a file instead of stdout")

	return cmd
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-discover on a schedule and announce new events",
		Long: `Runs discovery on a cron schedule and announces events not seen in
earlier passes. Announcements are printed by default; --tweet posts them
to Twitter using TWITTER_* credentials from the environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := buildAgent()
			if err != nil {
				return err
			}

			var n notifier.Notifier = notifier.NewDryRunNotifier()
			if flagTweet {
				n, err = notifier.NewTwitterNotifier()
				if err != nil {
					return err
				}
			}

			spec := flagCron
			if spec == "" {
				spec = cfg.WatchCron
			}

			s := scheduler.New(a, a.Cache(), n)
			if err := s.Start(cmd.Context(), spec); err != nil {
				return fmt.Errorf("starting schedule: %w", err)
			}
			defer s.Stop()

			fmt.Fprintf(os.Stderr, "Watching on schedule %q, Ctrl-C to stop\n", spec)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}

	cmd.Flags().StringVar(&flagCron, "cron", "", "Cron spec for re-discovery (default from WATCH_CRON)")
	cmd.Flags().BoolVar(&flagTweet, "tweet", false, "Post announcements to Twitter instead of printing")

	return cmd
}

// buildAgent wires the discovery agent from environment configuration.
func buildAgent() (*agent.DiscoveryAgent, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	f := fetcher.New(cfg.RequestTimeout, cfg.MaxRetries, cfg.UserAgent)
	a := agent.NewDiscovery(f, cache.New(cfg.CacheExpiry))
	return a, cfg, nil
}

func parseFormat() OutputFormat {
	return OutputFormat(strings.ToLower(flagFormat))
}

// writeDiscovery prints a discover/filter response in the selected format.
func writeDiscovery(resp agent.Response) error {
	if resp["success"] != true {
		return fmt.Errorf("%v", resp["error"])
	}

	format := parseFormat()
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByRelevance && order != SortByDate && order != SortByTitle {
		return fmt.Errorf("invalid sort order: %s (must be 'relevance', 'date', or 'title')", flagSort)
	}

	events, _ := resp["events"].([]*event.Event)
	origin, _ := resp["source"].(string)
	sortEvents(events, order)

	result := &OutputResult{
		Origin:     origin,
		Events:     events,
		EventCount: len(events),
	}
	return WriteOutput(os.Stdout, result, format, flagVerbose)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
