package reminder

import "testing"

func period(v float64) *float64 { return &v }

func TestNeedsReschedule(t *testing.T) {
	tests := []struct {
		name string
		in   Decision
		want bool
	}{
		{"forced while idle", Decision{Force: true}, true},
		{"forced while active with same period", Decision{Force: true, ShouldSchedule: true, SchedulerActive: true, ActivePeriod: period(1200), IntervalSeconds: 1200}, true},
		{"idle and should stay idle", Decision{}, false},
		{"idle but should schedule", Decision{ShouldSchedule: true, IntervalSeconds: 1200}, true},
		{"active but should stop", Decision{SchedulerActive: true, ActivePeriod: period(1200), IntervalSeconds: 1200}, true},
		{"active with same period", Decision{ShouldSchedule: true, SchedulerActive: true, ActivePeriod: period(1200), IntervalSeconds: 1200}, false},
		{"active with different period", Decision{ShouldSchedule: true, SchedulerActive: true, ActivePeriod: period(1200), IntervalSeconds: 900}, true},
		{"active without recorded period", Decision{ShouldSchedule: true, SchedulerActive: true, IntervalSeconds: 900}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsReschedule(tt.in); got != tt.want {
				t.Errorf("NeedsReschedule(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
