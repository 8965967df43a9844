// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/glambook/salon-service/internal/types"
)

const (
	recentAppointmentsLimit = 10
	topStaffLimit           = 6
	topClientsLimit         = 8
	popularServicesLimit    = 5

	activeClientWindow = 30 * 24 * time.Hour
)

type Stats struct {
	TodayAppointments       int     `json:"todayAppointments"`
	TodayRevenue            float64 `json:"todayRevenue"`
	ActiveClients           int     `json:"activeClients"`
	StaffUtilizationPercent int     `json:"staffUtilizationPercent"`
}

type Overview struct {
	Stats              Stats               `json:"stats"`
	RecentAppointments []types.Appointment `json:"appointments"`
	TopStaff           []types.StaffMember `json:"staff"`
	TopClients         []types.Client      `json:"clients"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

type Analytics struct {
	MonthlyRevenue    float64        `json:"monthlyRevenue"`
	RetentionRate     int            `json:"retentionRate"`
	PopularServices   []ServiceCount `json:"popularServices"`
	TotalAppointments int            `json:"totalAppointments"`
	TotalClients      int            `json:"totalClients"`
	TotalStaff        int            `json:"totalStaff"`
}

// Aggregate computes the dashboard overview from the tenant's collections.
// It is a pure function of its inputs: "today" is now's UTC calendar date,
// so the result never depends on the host timezone.
func Aggregate(appointments []types.Appointment, staff []types.StaffMember, clients []types.Client, now time.Time) Overview {
	today := now.UTC().Format("2006-01-02")
	cutoff := now.UTC().Add(-activeClientWindow)

	var todayAppointments []types.Appointment
	var todayRevenue float64
	for _, a := range appointments {
		if a.Date == today {
			todayAppointments = append(todayAppointments, a)
			todayRevenue += a.Price
		}
	}

	activeClients := 0
	for _, c := range clients {
		visit, err := time.ParseInLocation("2006-01-02", c.LastVisit, time.UTC)
		if err != nil {
			continue
		}
		if visit.After(cutoff) {
			activeClients++
		}
	}

	utilization := 0
	if len(staff) > 0 {
		busy := 0
		for _, m := range staff {
			if m.Availability == types.StaffBusy {
				busy++
			}
		}
		utilization = int(math.Round(100 * float64(busy) / float64(len(staff))))
	}

	return Overview{
		Stats: Stats{
			TodayAppointments:       len(todayAppointments),
			TodayRevenue:            todayRevenue,
			ActiveClients:           activeClients,
			StaffUtilizationPercent: utilization,
		},
		RecentAppointments: truncate(todayAppointments, recentAppointmentsLimit),
		TopStaff:           truncate(staff, topStaffLimit),
		TopClients:         truncate(clients, topClientsLimit),
	}
}

// Analyze computes the analytics view. Monthly figures use now's UTC month.
func Analyze(appointments []types.Appointment, clients []types.Client, staff []types.StaffMember, now time.Time) Analytics {
	monthPrefix := now.UTC().Format("2006-01")

	var monthlyRevenue float64
	serviceCounts := make(map[string]int)
	for _, a := range appointments {
		if len(a.Date) >= len(monthPrefix) && a.Date[:len(monthPrefix)] == monthPrefix {
			monthlyRevenue += a.Price
		}
		if a.Service != "" {
			serviceCounts[a.Service]++
		}
	}

	retention := 0
	if len(clients) > 0 {
		returning := 0
		for _, c := range clients {
			if c.Visits > 1 {
				returning++
			}
		}
		retention = int(math.Round(100 * float64(returning) / float64(len(clients))))
	}

	popular := make([]ServiceCount, 0, len(serviceCounts))
	for service, count := range serviceCounts {
		popular = append(popular, ServiceCount{Service: service, Count: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Service < popular[j].Service
	})

	return Analytics{
		MonthlyRevenue:    monthlyRevenue,
		RetentionRate:     retention,
		PopularServices:   truncate(popular, popularServicesLimit),
		TotalAppointments: len(appointments),
		TotalClients:      len(clients),
		TotalStaff:        len(staff),
	}
}

func truncate[T any](items []T, limit int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
