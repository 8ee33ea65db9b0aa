// Package logtail reads the end of the headway log file for the watch view.
//
// Watch mode sends log output to a file (see --log-file) because the terminal
// belongs to the view. Tail lets the view show recent log lines without
// loading the whole file: it scans once, keeping the last N lines in a ring.
//
// Each line is classified by Classify:
//
//   - SeverityError: fetch failures and polls that resolved nothing
//   - SeverityWarn: suspicious countdowns and skipped requests
//   - SeverityInfo: everything else
//
// Problems filters a tail down to warnings and errors.
//
// # Usage
//
//	lines, err := logtail.Tail("/tmp/headway.log", 200)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//		return
//	}
//	for _, l := range logtail.Problems(lines) {
//		fmt.Println(l.Text)
//	}
//
// A missing file or an empty path yields no lines and no error, so the view
// can poll before the first log write.
package logtail
