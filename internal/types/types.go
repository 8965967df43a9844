// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Appointment, StaffMember, Client and Campaign are stored as whole JSON
// collections under their tenant's key in the records table. The structs
// below define the canonical wire and storage shape of one record.

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
)

type Availability string

const (
	StaffAvailable Availability = "available"
	StaffBusy      Availability = "busy"
	StaffOnBreak   Availability = "break"
)

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

type CampaignChannel string

const (
	ChannelEmail CampaignChannel = "email"
	ChannelSMS   CampaignChannel = "sms"
	ChannelPush  CampaignChannel = "push"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSent      CampaignStatus = "sent"
)

type Tenant struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	SalonName        string    `db:"salon_name" json:"salonName"`
	SubscriptionTier string    `db:"subscription_tier" json:"subscriptionTier"`
	Features         []string  `db:"features" json:"features"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

type Credential struct {
	Email        string    `db:"email"`
	TenantID     string    `db:"tenant_id"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session is an opaque bearer credential. Sessions never expire, they are
// deleted at sign-out only.
type Session struct {
	Token    string    `json:"accessToken"`
	TenantID string    `json:"-"`
	IssuedAt time.Time `json:"issuedAt"`
}

type Appointment struct {
	ID              string            `json:"id"`
	ClientName      string            `json:"clientName"`
	ClientEmail     string            `json:"clientEmail,omitempty"`
	ClientPhone     string            `json:"clientPhone,omitempty"`
	Service         string            `json:"service"`
	StylistName     string            `json:"stylistName"`
	Date            string            `json:"date"` // YYYY-MM-DD
	Time            string            `json:"time"`
	DurationMinutes int               `json:"durationMinutes"`
	Price           float64           `json:"price"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
}

type StaffMember struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Specialization       string       `json:"specialization"`
	Rating               float64      `json:"rating"`
	Availability         Availability `json:"availability"`
	NextAppointmentLabel string       `json:"nextAppointmentLabel,omitempty"`
	AvatarRef            string       `json:"avatarRef,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
}

type Client struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LoyaltyTier LoyaltyTier `json:"loyaltyTier"`
	Visits      int         `json:"visits"`
	TotalSpent  float64     `json:"totalSpent"`
	LastVisit   string      `json:"lastVisit,omitempty"` // YYYY-MM-DD
	AvatarRef   string      `json:"avatarRef,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type Campaign struct {
	ID        string          `json:"id"`
	Channel   CampaignChannel `json:"channel"`
	Segment   string          `json:"segment"`
	Message   string          `json:"message"`
	Status    CampaignStatus  `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SalonSettings lives under the tenant's "settings" collection key.
type SalonSettings struct {
	SalonName        string    `json:"salonName"`
	OwnerName        string    `json:"ownerName"`
	SubscriptionTier string    `json:"subscriptionTier"`
	Features         []string  `json:"features"`
	CreatedAt        time.Time `json:"createdAt"`
}
