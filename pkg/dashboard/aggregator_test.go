// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/glambook/salon-service/internal/types"
)

var aggregateNow = time.Date(2026, 8, 27, 15, 30, 0, 0, time.UTC)

func TestAggregateTodayStats(t *testing.T) {
	appointments := []types.Appointment{
		{ID: "a1", Date: "2026-08-27", Price: 100, Service: "Haircut"},
		{ID: "a2", Date: "2026-08-27", Price: 50.5, Service: "Blowout"},
		{ID: "a3", Date: "2026-08-26", Price: 999, Service: "Balayage"},
		{ID: "a4", Date: "2026-09-27", Price: 999, Service: "Balayage"},
	}

	overview := Aggregate(appointments, nil, nil, aggregateNow)

	if overview.Stats.TodayAppointments != 2 {
		t.Fatalf("expected 2 appointments today, got %d", overview.Stats.TodayAppointments)
	}
	if overview.Stats.TodayRevenue != 150.5 {
		t.Fatalf("expected revenue 150.5, got %v", overview.Stats.TodayRevenue)
	}
	if len(overview.RecentAppointments) != 2 {
		t.Fatalf("expected 2 recent appointments, got %d", len(overview.RecentAppointments))
	}
	if overview.RecentAppointments[0].ID != "a1" || overview.RecentAppointments[1].ID != "a2" {
		t.Fatal("expected recent appointments in stored order")
	}
}

func TestAggregateDateBasisIsUTC(t *testing.T) {
	// 01:30 on the 28th in UTC+2 is still 23:30 on the 27th in UTC; the
	// aggregation must use the UTC date.
	lateNow := time.Date(2026, 8, 28, 1, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	appointments := []types.Appointment{
		{ID: "a1", Date: "2026-08-27", Price: 100},
	}

	overview := Aggregate(appointments, nil, nil, lateNow)
	if overview.Stats.TodayAppointments != 1 {
		t.Fatalf("expected the appointment on the UTC date to count, got %d", overview.Stats.TodayAppointments)
	}
}

func TestAggregateActiveClientsBoundary(t *testing.T) {
	// Cutoff is exactly 30 days before now; a visit on the cutoff date
	// (midnight UTC) is not strictly after it.
	appointmentsNow := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	clients := []types.Client{
		{ID: "c1", Name: "On the boundary", LastVisit: "2026-08-01"},
		{ID: "c2", Name: "Inside the window", LastVisit: "2026-08-02"},
		{ID: "c3", Name: "Long lapsed", LastVisit: "2025-01-01"},
		{ID: "c4", Name: "Never visited", LastVisit: ""},
	}

	overview := Aggregate(nil, nil, clients, appointmentsNow)
	if overview.Stats.ActiveClients != 1 {
		t.Fatalf("expected 1 active client, got %d", overview.Stats.ActiveClients)
	}
}

func TestAggregateStaffUtilization(t *testing.T) {
	tests := []struct {
		name  string
		staff []types.StaffMember
		want  int
	}{
		{name: "no staff", staff: nil, want: 0},
		{
			name: "one of three busy",
			staff: []types.StaffMember{
				{Availability: types.StaffBusy},
				{Availability: types.StaffAvailable},
				{Availability: types.StaffOnBreak},
			},
			want: 33,
		},
		{
			name: "two of three busy rounds up",
			staff: []types.StaffMember{
				{Availability: types.StaffBusy},
				{Availability: types.StaffBusy},
				{Availability: types.StaffAvailable},
			},
			want: 67,
		},
		{
			name: "all busy",
			staff: []types.StaffMember{
				{Availability: types.StaffBusy},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overview := Aggregate(nil, tt.staff, nil, aggregateNow)
			if overview.Stats.StaffUtilizationPercent != tt.want {
				t.Fatalf("expected utilization %d, got %d", tt.want, overview.Stats.StaffUtilizationPercent)
			}
		})
	}
}

func TestAggregateTruncation(t *testing.T) {
	var appointments []types.Appointment
	for i := 0; i < 15; i++ {
		appointments = append(appointments, types.Appointment{
			ID:   fmt.Sprintf("a%d", i),
			Date: "2026-08-27",
		})
	}
	var staff []types.StaffMember
	for i := 0; i < 9; i++ {
		staff = append(staff, types.StaffMember{ID: fmt.Sprintf("s%d", i)})
	}
	var clients []types.Client
	for i := 0; i < 12; i++ {
		clients = append(clients, types.Client{ID: fmt.Sprintf("c%d", i)})
	}

	overview := Aggregate(appointments, staff, clients, aggregateNow)

	if len(overview.RecentAppointments) != 10 {
		t.Fatalf("expected 10 recent appointments, got %d", len(overview.RecentAppointments))
	}
	if overview.Stats.TodayAppointments != 15 {
		t.Fatalf("expected the stat to count all 15, got %d", overview.Stats.TodayAppointments)
	}
	if len(overview.TopStaff) != 6 {
		t.Fatalf("expected 6 staff, got %d", len(overview.TopStaff))
	}
	if overview.TopStaff[0].ID != "s0" {
		t.Fatal("expected staff in stored order")
	}
	if len(overview.TopClients) != 8 {
		t.Fatalf("expected 8 clients, got %d", len(overview.TopClients))
	}
}

func TestAggregateEmptyCollections(t *testing.T) {
	overview := Aggregate(nil, nil, nil, aggregateNow)

	if overview.Stats != (Stats{}) {
		t.Fatalf("expected zeroed stats, got %+v", overview.Stats)
	}
	if overview.RecentAppointments == nil || overview.TopStaff == nil || overview.TopClients == nil {
		t.Fatal("expected empty slices, not nil, so the JSON shows [] not null")
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	appointments := []types.Appointment{
		{ID: "a1", Date: "2026-08-27", Price: 100},
	}
	staff := []types.StaffMember{{ID: "s1", Availability: types.StaffBusy}}
	clients := []types.Client{{ID: "c1", LastVisit: "2026-08-20"}}

	first := Aggregate(appointments, staff, clients, aggregateNow)
	second := Aggregate(appointments, staff, clients, aggregateNow)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestAnalyzeMonthlyRevenue(t *testing.T) {
	appointments := []types.Appointment{
		{Date: "2026-08-01", Price: 100},
		{Date: "2026-08-27", Price: 50},
		{Date: "2026-07-31", Price: 999},
		{Date: "2025-08-15", Price: 999},
	}

	analytics := Analyze(appointments, nil, nil, aggregateNow)

	if analytics.MonthlyRevenue != 150 {
		t.Fatalf("expected monthly revenue 150, got %v", analytics.MonthlyRevenue)
	}
	if analytics.TotalAppointments != 4 {
		t.Fatalf("expected 4 total appointments, got %d", analytics.TotalAppointments)
	}
}

func TestAnalyzeRetentionRate(t *testing.T) {
	clients := []types.Client{
		{Visits: 0},
		{Visits: 1},
		{Visits: 2},
		{Visits: 8},
	}

	analytics := Analyze(nil, clients, nil, aggregateNow)
	if analytics.RetentionRate != 50 {
		t.Fatalf("expected retention 50, got %d", analytics.RetentionRate)
	}

	empty := Analyze(nil, nil, nil, aggregateNow)
	if empty.RetentionRate != 0 {
		t.Fatalf("expected retention 0 for no clients, got %d", empty.RetentionRate)
	}
}

func TestAnalyzePopularServicesDeterministic(t *testing.T) {
	appointments := []types.Appointment{
		{Service: "Haircut", Date: "2026-08-01"},
		{Service: "Haircut", Date: "2026-08-02"},
		{Service: "Haircut", Date: "2026-08-03"},
		{Service: "Balayage", Date: "2026-08-01"},
		{Service: "Balayage", Date: "2026-08-02"},
		{Service: "Blowout", Date: "2026-08-01"},
		{Service: "Blowout", Date: "2026-08-02"},
		{Service: "Manicure", Date: "2026-08-01"},
		{Service: "Pedicure", Date: "2026-08-01"},
		{Service: "Facial", Date: "2026-08-01"},
	}

	want := []ServiceCount{
		{Service: "Haircut", Count: 3},
		{Service: "Balayage", Count: 2},
		{Service: "Blowout", Count: 2},
		{Service: "Facial", Count: 1},
		{Service: "Manicure", Count: 1},
	}

	// Map iteration order must not leak into the result.
	for i := 0; i < 20; i++ {
		analytics := Analyze(appointments, nil, nil, aggregateNow)
		if !reflect.DeepEqual(analytics.PopularServices, want) {
			t.Fatalf("run %d: expected %+v, got %+v", i, want, analytics.PopularServices)
		}
	}
}
