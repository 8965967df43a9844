// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/types"
)

const (
	demoEmail    = "owner@example.com"
	demoPassword = "password"
	demoName     = "Salon Owner"
	demoSalon    = "My Salon"
)

// SeedDemoData provisions the demo account and a populated collection set
// when the demo credential does not exist yet. Intended for local and demo
// deployments only.
func SeedDemoData(ctx context.Context, service ServiceInterface, store storage.StorageInterface, logger logging.LoggerInterface) error {
	if _, err := store.GetCredentialByEmail(ctx, demoEmail); err == nil {
		logger.Debugf("demo account already present, skipping seed")
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check demo account: %w", err)
	}

	tenant, err := service.SignUp(ctx, demoEmail, demoPassword, demoName, demoSalon)
	if err != nil {
		return fmt.Errorf("failed to create demo account: %w", err)
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	appointments := []types.Appointment{
		{ID: newID(), ClientName: "Sarah Johnson", Service: "Hair Color & Cut", StylistName: "Emma Wilson", Date: today, Time: "10:00", DurationMinutes: 120, Price: 180, Status: types.AppointmentConfirmed, CreatedAt: now},
		{ID: newID(), ClientName: "Michael Chen", Service: "Beard Trim", StylistName: "Carlos Rodriguez", Date: today, Time: "11:30", DurationMinutes: 45, Price: 45, Status: types.AppointmentPending, CreatedAt: now},
		{ID: newID(), ClientName: "Lisa Anderson", Service: "Facial Treatment", StylistName: "Sophia Kim", Date: today, Time: "14:00", DurationMinutes: 90, Price: 120, Status: types.AppointmentConfirmed, CreatedAt: now},
		{ID: newID(), ClientName: "David Wilson", Service: "Full Hair Styling", StylistName: "Emma Wilson", Date: today, Time: "16:00", DurationMinutes: 75, Price: 85, Status: types.AppointmentCompleted, CreatedAt: now},
	}

	staff := []types.StaffMember{
		{ID: newID(), Name: "Emma Wilson", Specialization: "Hair Color Expert", Rating: 4.9, Availability: types.StaffAvailable, NextAppointmentLabel: "10:00 AM", AvatarRef: "EW", CreatedAt: now},
		{ID: newID(), Name: "Carlos Rodriguez", Specialization: "Men's Grooming", Rating: 4.8, Availability: types.StaffBusy, NextAppointmentLabel: "11:30 AM", AvatarRef: "CR", CreatedAt: now},
		{ID: newID(), Name: "Sophia Kim", Specialization: "Skincare Specialist", Rating: 4.9, Availability: types.StaffAvailable, NextAppointmentLabel: "2:00 PM", AvatarRef: "SK", CreatedAt: now},
		{ID: newID(), Name: "Marcus Thompson", Specialization: "Barber & Stylist", Rating: 4.7, Availability: types.StaffOnBreak, NextAppointmentLabel: "3:30 PM", AvatarRef: "MT", CreatedAt: now},
	}

	clients := []types.Client{
		{ID: newID(), Name: "Sarah Johnson", LoyaltyTier: types.TierPlatinum, Visits: 24, TotalSpent: 4320, LastVisit: now.AddDate(0, 0, -2).Format("2006-01-02"), AvatarRef: "SJ", CreatedAt: now},
		{ID: newID(), Name: "Lisa Anderson", LoyaltyTier: types.TierGold, Visits: 18, TotalSpent: 2160, LastVisit: now.AddDate(0, 0, -7).Format("2006-01-02"), AvatarRef: "LA", CreatedAt: now},
		{ID: newID(), Name: "Michael Chen", LoyaltyTier: types.TierSilver, Visits: 12, TotalSpent: 540, LastVisit: now.AddDate(0, 0, -3).Format("2006-01-02"), AvatarRef: "MC", CreatedAt: now},
		{ID: newID(), Name: "David Wilson", LoyaltyTier: types.TierGold, Visits: 16, TotalSpent: 1360, LastVisit: today, AvatarRef: "DW", CreatedAt: now},
	}

	for collection, value := range map[string]interface{}{
		storage.CollectionAppointments: appointments,
		storage.CollectionStaff:        staff,
		storage.CollectionClients:      clients,
	} {
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to serialize demo %s: %w", collection, err)
		}
		if err := store.SetCollection(ctx, tenant.ID, collection, payload); err != nil {
			return fmt.Errorf("failed to seed demo %s: %w", collection, err)
		}
	}

	logger.Infof("seeded demo account %s for tenant %s", demoEmail, tenant.ID)

	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
