/*
main.go - Command-line entry point

PURPOSE:
  Answers the questions a clerk's office actually asks: which days are
  holidays this year, when must a meeting notice be posted, when is a
  records-request response due, and which open requests have gone overdue.

SUBCOMMANDS:
  holidays -year=2025
      List the holiday calendar for a year.

  notice -meeting="2025-02-10 19:00" [-posted="2025-02-05 10:00"]
      Print the latest timely posting instant for a meeting; with -posted,
      judge the posting.

  apra -received="2025-01-06 10:00" [-responded="2025-01-10 16:00"]
      Print the statutory response deadline for a records request; with
      -responded, judge the response.

  watch -db="./data/clerk.db"
      Run the overdue sweep against a persistent store until interrupted.

COMMON FLAGS:
  -config  Optional YAML calendar configuration (rule set + extra
           holidays). Without it the built-in Indiana calendar is used.

EXAMPLES:
  # When must notice for a Monday 7pm meeting be posted?
  ./clerk notice -meeting="2025-02-10 19:00"

  # Was this response timely?
  ./clerk apra -received="2025-01-06 10:00" -responded="2025-01-16 09:00"

  # Sweep a live database for overdue requests
  ./clerk watch -db=":memory:"

SEE ALSO:
  - compliance/opendoor.go: Notice evaluator
  - compliance/apra.go: Response-window evaluator
  - workflow/monitor.go: Overdue sweep
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/compliance"
	"github.com/civica/compliance-engine/factory"
	"github.com/civica/compliance-engine/indiana"
	"github.com/civica/compliance-engine/store/sqlite"
	"github.com/civica/compliance-engine/workflow"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "holidays":
		runHolidays(os.Args[2:])
	case "notice":
		runNotice(os.Args[2:])
	case "apra":
		runAPRA(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clerk <holidays|notice|apra|watch> [flags]")
}

// loadCalendar builds the calendar from a YAML config file, or the built-in
// Indiana calendar when no config is given.
func loadCalendar(configPath string) *businesstime.Calendar {
	if configPath == "" {
		cal, err := indiana.Calendar(businesstime.Options{})
		if err != nil {
			log.Fatalf("Failed to build calendar: %v", err)
		}
		return cal
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	cal, err := factory.ParseCalendarYAML(data)
	if err != nil {
		log.Fatalf("Failed to load calendar config: %v", err)
	}
	return cal
}

// parsePoint accepts "2006-01-02 15:04" or "2006-01-02".
func parsePoint(flagName, value string) businesstime.TimePoint {
	if value == "" {
		log.Fatalf("Flag -%s is required", flagName)
	}
	if t, err := time.Parse("2006-01-02 15:04", value); err == nil {
		return businesstime.NewTimePointWithMinute(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute())
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return businesstime.NewTimePoint(t.Year(), t.Month(), t.Day())
	}
	log.Fatalf("Flag -%s: cannot parse %q (want \"2006-01-02 15:04\" or \"2006-01-02\")", flagName, value)
	panic("unreachable")
}

func formatPoint(tp businesstime.TimePoint) string {
	return tp.Time.Format("Mon 2006-01-02 15:04")
}

// =============================================================================
// SUBCOMMANDS
// =============================================================================

func runHolidays(args []string) {
	fs := flag.NewFlagSet("holidays", flag.ExitOnError)
	year := fs.Int("year", time.Now().Year(), "Calendar year")
	fs.Parse(args)

	rules := indiana.Rules()
	fmt.Printf("%s holidays, %d\n", rules.Name, *year)
	for _, spec := range rules.Specs {
		d, ok := spec.Resolve(*year)
		if !ok {
			continue
		}
		fmt.Printf("  %s  %-9s  %s\n", d.Key(), d.Weekday(), spec.HolidayName())
	}
}

func runNotice(args []string) {
	fs := flag.NewFlagSet("notice", flag.ExitOnError)
	meeting := fs.String("meeting", "", "Meeting start (\"2006-01-02 15:04\")")
	posted := fs.String("posted", "", "Notice posting instant (optional)")
	configPath := fs.String("config", "", "YAML calendar configuration")
	fs.Parse(args)

	cal := loadCalendar(*configPath)
	start := parsePoint("meeting", *meeting)

	requiredBy := compliance.RequiredPostedBy(start, cal)
	fmt.Printf("Meeting:           %s\n", formatPoint(start))
	fmt.Printf("Notice due by:     %s\n", formatPoint(requiredBy))

	if *posted == "" {
		return
	}
	result := compliance.CheckNotice(start, parsePoint("posted", *posted), cal)
	fmt.Printf("Posted:            %s\n", *posted)
	fmt.Printf("Business-hr lead:  %d\n", result.BusinessHoursLead)
	if result.Timely {
		fmt.Println("Verdict:           TIMELY")
	} else {
		fmt.Println("Verdict:           LATE")
	}
}

func runAPRA(args []string) {
	fs := flag.NewFlagSet("apra", flag.ExitOnError)
	received := fs.String("received", "", "Receipt instant (\"2006-01-02 15:04\")")
	responded := fs.String("responded", "", "Response instant (optional)")
	configPath := fs.String("config", "", "YAML calendar configuration")
	fs.Parse(args)

	cal := loadCalendar(*configPath)
	receivedAt := parsePoint("received", *received)

	deadline := compliance.ResponseDeadline(receivedAt, cal)
	fmt.Printf("Received:          %s\n", formatPoint(receivedAt))
	fmt.Printf("Response due by:   %s\n", formatPoint(deadline))

	if *responded == "" {
		return
	}
	result := compliance.CheckResponse(receivedAt, parsePoint("responded", *responded), cal)
	fmt.Printf("Responded:         %s\n", *responded)
	fmt.Printf("Business-day lead: %d\n", result.BusinessDaysLead)
	if result.Timely {
		fmt.Println("Verdict:           TIMELY")
	} else {
		fmt.Println("Verdict:           LATE")
	}
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	dbPath := fs.String("db", "clerk.db", "SQLite database path (\":memory:\" for in-memory)")
	interval := fs.Duration("interval", time.Hour, "Sweep interval")
	configPath := fs.String("config", "", "YAML calendar configuration")
	fs.Parse(args)

	cal := loadCalendar(*configPath)

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	svc := workflow.NewRequestService(store, cal)
	monitor := workflow.NewDeadlineMonitor(svc)
	monitor.CheckInterval = *interval
	monitor.Start()
	log.Printf("Watching %s for overdue requests (every %s)", *dbPath, *interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	monitor.Stop()
}
