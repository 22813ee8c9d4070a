package scheduler

import "testing"

func TestCronToHuman(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"0 8 * * *", "Daily at 8:00 AM"},
		{"30 17 * * *", "Daily at 5:30 PM"},
		{"0 8 * * 1", "Weekly on Monday at 8:00 AM"},
		{"0 8 * * 0", "Weekly on Sunday at 8:00 AM"},
		{"0 8 * * 7", "Weekly on Sunday at 8:00 AM"},
		{"15 9 1 * *", "Monthly on day 1 at 9:15 AM"},
		{"*/5 * * * *", "Every 5 minutes"},
		{"0 * * * *", "Every hour"},
		{"* * * * *", "Every minute"},
		{"", ""},
		{"not a cron", "not a cron"},
		{"0 25 * * *", "0 25 * * *"},
		{"0 8 1 * 1", "0 8 1 * 1"},
	}
	for _, tc := range cases {
		if got := CronToHuman(tc.expr); got != tc.want {
			t.Fatalf("CronToHuman(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}
