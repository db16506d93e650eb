package dto

import (
	"time"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PropertyRequest carries the insured address on a sell request.
type PropertyRequest struct {
	AddressLine1 string `json:"addressLine1" binding:"required,notblank"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	Postcode     string `json:"postcode" binding:"required,notblank,max=8"`
}

// PolicyholderRequest carries one named person on a sell request.
type PolicyholderRequest struct {
	FirstName   string `json:"firstName" binding:"required,notblank"`
	LastName    string `json:"lastName" binding:"required,notblank"`
	DateOfBirth Date   `json:"dateOfBirth" binding:"required"`
}

// PaymentRequest carries payment details for a sale or renewal.
type PaymentRequest struct {
	Reference     string          `json:"reference" binding:"required,notblank"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// SellPolicyRequest defines the data needed to sell a new policy.
type SellPolicyRequest struct {
	InsuranceType string                `json:"insuranceType" binding:"required"`
	StartDate     Date                  `json:"startDate" binding:"required"`
	Amount        decimal.Decimal       `json:"amount" binding:"required"`
	Currency      string                `json:"currency"` // optional, defaults to GBP
	AutoRenew     bool                  `json:"autoRenew"`
	Property      PropertyRequest       `json:"property" binding:"required"`
	Policyholders []PolicyholderRequest `json:"policyholders" binding:"required,min=1,dive"`
	Payment       *PaymentRequest       `json:"payment"`
}

// SellPolicyResponse returns the reference of the newly sold policy.
type SellPolicyResponse struct {
	PolicyReference string `json:"policyReference"`
}

// CancelPolicyRequest defines the data needed to cancel a policy or quote a
// cancellation.
type CancelPolicyRequest struct {
	CancellationDate Date   `json:"cancellationDate" binding:"required"`
	PaymentMethod    string `json:"paymentMethod" binding:"required"`
}

// CancelPolicyResponse reports the refund for a cancellation or a quote.
type CancelPolicyResponse struct {
	PolicyReference string          `json:"policyReference"`
	RefundAmount    decimal.Decimal `json:"refundAmount"`
	Currency        string          `json:"currency"`
	RefundMethod    string          `json:"refundMethod"`
}

// RenewPolicyRequest defines the data needed to renew a policy. Payment is
// required only for auto-renewing policies.
type RenewPolicyRequest struct {
	RenewalDate Date            `json:"renewalDate" binding:"required"`
	Payment     *PaymentRequest `json:"payment"`
}

// PropertyResponse mirrors domain.Property.
type PropertyResponse struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	Postcode     string `json:"postcode"`
}

// PolicyholderResponse mirrors domain.Policyholder.
type PolicyholderResponse struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth Date   `json:"dateOfBirth"`
}

// PaymentResponse mirrors domain.Payment.
type PaymentResponse struct {
	Reference     string          `json:"reference"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
}

// PolicyResponse is the full read view of a policy.
type PolicyResponse struct {
	PolicyReference string                 `json:"policyReference"`
	InsuranceType   string                 `json:"insuranceType"`
	Status          string                 `json:"status"`
	Property        PropertyResponse       `json:"property"`
	StartDate       Date                   `json:"startDate"`
	EndDate         Date                   `json:"endDate"`
	Premium         decimal.Decimal        `json:"premium"`
	Currency        string                 `json:"currency"`
	AutoRenew       bool                   `json:"autoRenew"`
	HasClaims       bool                   `json:"hasClaims"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastModifiedAt  time.Time              `json:"lastModifiedAt"`
	Policyholders   []PolicyholderResponse `json:"policyholders"`
	Payments        []PaymentResponse      `json:"payments"`
}

// ErrorResponse is the body returned for any failed request. Clients branch
// on Code; Message is informational only.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToPolicyResponse converts a domain.Policy to its read DTO.
func ToPolicyResponse(p *domain.Policy) PolicyResponse {
	property := PropertyResponse{}
	if prop := p.InsuredProperty(); prop != nil {
		property = PropertyResponse{
			AddressLine1: prop.AddressLine1,
			AddressLine2: prop.AddressLine2,
			AddressLine3: prop.AddressLine3,
			Postcode:     prop.Postcode,
		}
	}

	holders := make([]PolicyholderResponse, 0, len(p.Policyholders()))
	for _, ph := range p.Policyholders() {
		holders = append(holders, PolicyholderResponse{
			FirstName:   ph.FirstName,
			LastName:    ph.LastName,
			DateOfBirth: NewDate(ph.DateOfBirth),
		})
	}

	payments := make([]PaymentResponse, 0, len(p.Payments()))
	for _, pay := range p.Payments() {
		payments = append(payments, PaymentResponse{
			Reference:     pay.Reference,
			PaymentMethod: string(pay.Method),
			Amount:        pay.Amount,
		})
	}

	return PolicyResponse{
		PolicyReference: p.Reference().Value(),
		InsuranceType:   string(p.InsuranceType()),
		Status:          string(p.Status()),
		Property:        property,
		StartDate:       NewDate(p.StartDate()),
		EndDate:         NewDate(p.EndDate()),
		Premium:         p.Premium().Amount(),
		Currency:        p.Premium().Currency(),
		AutoRenew:       p.AutoRenew(),
		HasClaims:       p.HasClaims(),
		CreatedAt:       p.CreatedAt(),
		LastModifiedAt:  p.LastModifiedAt(),
		Policyholders:   holders,
		Payments:        payments,
	}
}
