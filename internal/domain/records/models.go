package records

import "time"

const (
	MethodPix  = "pix"
	MethodCash = "cash"

	DefaultCheckIn  = "08:00"
	DefaultCheckOut = "16:00"
)

// WorkRecord is one employee's entry for one calendar day. The employee
// name plus work date acts as a soft key: the UI upserts on it, but the
// store does not enforce uniqueness and duplicates must be tolerated
// downstream.
type WorkRecord struct {
	ID            string     `json:"id,omitempty"`
	EmployeeName  string     `json:"nome"`
	SalesShare    float64    `json:"valor_10_percent"`
	CheckIn       string     `json:"hora_entrada"`
	CheckOut      string     `json:"hora_saida"`
	WorkDate      *time.Time `json:"dia_trabalho,omitempty"`
	Note          string     `json:"observacao,omitempty"`
	Advance       *float64   `json:"vale,omitempty"`
	AdvanceMethod string     `json:"tipo_vale,omitempty"`
	Paid          bool       `json:"pago"`
	PaymentMethod string     `json:"tipo_pagamento"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"`
}

// GeneralNote is a free-text note attached to a calendar date, not to an
// individual employee.
type GeneralNote struct {
	ID        string     `json:"id,omitempty"`
	WorkDate  *time.Time `json:"dia_trabalho,omitempty"`
	Note      string     `json:"observacao"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

// Delivery logs one successful report e-mail for a work day.
type Delivery struct {
	ID            string     `json:"id,omitempty"`
	WorkDate      *time.Time `json:"dia_trabalho,omitempty"`
	WeekdayLabel  string     `json:"dia_semana"`
	EmployeeCount int        `json:"total_funcionarios"`
	Total         float64    `json:"total_valores"`
	SentAt        time.Time  `json:"data_envio"`
}
