package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogCycle appends one line per completed monitoring cycle to
// ~/.catalogwatch/audit.log. Failures are silent; the audit trail is
// best-effort and must never break a cycle.
func LogCycle(products, stale, naming, unauthorized, highLaunchers, recordErrors int) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	logDir := filepath.Join(home, ".catalogwatch")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		os.Mkdir(logDir, 0755)
	}

	f, err := os.OpenFile(filepath.Join(logDir, "audit.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	entry := fmt.Sprintf("[%s] cycle products=%d stale=%d naming=%d unauthorized=%d high-launchers=%d record-errors=%d\n",
		time.Now().Format(time.RFC3339),
		products,
		stale,
		naming,
		unauthorized,
		highLaunchers,
		recordErrors,
	)

	if _, err := f.WriteString(entry); err != nil {
		fmt.Printf("(Warning: Failed to write audit log)\n")
	}
}
