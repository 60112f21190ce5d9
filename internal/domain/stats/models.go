package stats

import "time"

type RankingEntry struct {
	Position      int     `json:"posicao"`
	Name          string  `json:"nome"`
	DaysWorked    int     `json:"dias_trabalhados"`
	TotalReceived float64 `json:"total_recebido"`
	AverageDaily  float64 `json:"media_diaria"`
	MaxDaily      float64 `json:"maior_diaria"`
	MinDaily      float64 `json:"menor_diaria"`
	TotalPaid     float64 `json:"total_pago"`
	TotalPending  float64 `json:"total_pendente"`
}

type AttendanceEntry struct {
	Name       string     `json:"nome"`
	WorkDate   *time.Time `json:"dia_trabalho,omitempty"`
	DayLabel   string     `json:"dia_formatado"`
	CheckIn    string     `json:"hora_entrada"`
	CheckOut   string     `json:"hora_saida"`
	SalesShare float64    `json:"valor_10_percent"`
	Note       string     `json:"observacao,omitempty"`
}

type PaymentEntry struct {
	Name        string     `json:"nome"`
	WorkDate    *time.Time `json:"dia_trabalho,omitempty"`
	SalesShare  float64    `json:"valor_10_percent"`
	Advance     *float64   `json:"vale,omitempty"`
	Method      string     `json:"tipo_pagamento"`
	Paid        bool       `json:"pago"`
	StatusLabel string     `json:"status_pagamento"`
}

type RegistrationEntry struct {
	Name          string     `json:"nome"`
	FirstWorkDate *time.Time `json:"primeiro_dia_trabalho,omitempty"`
	LastWorkDate  *time.Time `json:"ultimo_dia_trabalho,omitempty"`
	DaysWorked    int        `json:"total_dias_trabalhados"`
	TotalReceived float64    `json:"total_recebido"`
	// DistinctDays holds the unique calendar days, independent of
	// duplicate rows for the same employee and date. DaysWorked counts
	// rows, matching the ranking table; the two can legitimately differ.
	DistinctDays []string `json:"dias_trabalhados"`
}

type TotalsSnapshot struct {
	TotalEmployees  int        `json:"total_cadastrados"`
	TotalRecords    int        `json:"total_registros"`
	TotalDaysWorked int        `json:"total_dias_trabalhados"`
	TotalPayable    float64    `json:"total_geral_pago"`
	TotalPaid       float64    `json:"total_pago"`
	TotalPending    float64    `json:"total_pendente"`
	FirstRecordDate *time.Time `json:"primeiro_registro,omitempty"`
	LastRecordDate  *time.Time `json:"ultimo_registro,omitempty"`
}
