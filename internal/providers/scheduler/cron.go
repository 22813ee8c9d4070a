package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CronToHuman renders a standard five-field cron expression as a short
// English phrase, e.g. "Daily at 8:00 AM". Expressions it cannot validate or
// phrase are returned unchanged so the raw schedule is still visible.
func CronToHuman(expr string) string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return ""
	}
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]
	// Standard cron also accepts 7 for Sunday; the parser only takes 0-6.
	if dow == "7" {
		dow = "0"
	}
	if _, err := cron.ParseStandard(strings.Join([]string{minute, hour, dom, month, dow}, " ")); err != nil {
		return expr
	}

	if phrase := intervalPhrase(minute, hour, dom, dow); phrase != "" {
		return capitalize(phrase)
	}

	clock, ok := clockPhrase(minute, hour)
	if !ok {
		return expr
	}

	switch {
	case dom == "*" && dow == "*":
		return "Daily at " + clock
	case dom == "*" && dow != "*":
		day, ok := weekdayName(dow)
		if !ok {
			return expr
		}
		return "Weekly on " + day + " at " + clock
	case dom != "*" && dow == "*":
		day, err := strconv.Atoi(dom)
		if err != nil {
			return expr
		}
		return fmt.Sprintf("Monthly on day %d at %s", day, clock)
	}
	return expr
}

func intervalPhrase(minute, hour, dom, dow string) string {
	if dom != "*" || dow != "*" {
		return ""
	}
	if step, ok := strings.CutPrefix(minute, "*/"); ok && hour == "*" {
		if n, err := strconv.Atoi(step); err == nil {
			if n == 1 {
				return "every minute"
			}
			return fmt.Sprintf("every %d minutes", n)
		}
	}
	if minute == "*" && hour == "*" {
		return "every minute"
	}
	if minute == "0" && hour == "*" {
		return "every hour"
	}
	if step, ok := strings.CutPrefix(hour, "*/"); ok && minute == "0" {
		if n, err := strconv.Atoi(step); err == nil && n > 1 {
			return fmt.Sprintf("every %d hours", n)
		}
	}
	return ""
}

func clockPhrase(minute, hour string) (string, bool) {
	m, err := strconv.Atoi(minute)
	if err != nil || m < 0 || m > 59 {
		return "", false
	}
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return "", false
	}
	t := time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
	return t.Format("3:04 PM"), true
}

func capitalize(phrase string) string {
	parts := strings.SplitN(phrase, " ", 2)
	parts[0] = titleCaser.String(parts[0])
	return strings.Join(parts, " ")
}

func weekdayName(dow string) (string, bool) {
	n, err := strconv.Atoi(dow)
	if err != nil || n < 0 || n > 7 {
		return "", false
	}
	// Both 0 and 7 mean Sunday in standard cron.
	return time.Weekday(n % 7).String(), true
}
