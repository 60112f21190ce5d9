package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `
  id, nome, valor_10_percent,
  COALESCE(hora_entrada, ''), COALESCE(hora_saida, ''),
  dia_trabalho, COALESCE(observacao, ''),
  vale, COALESCE(tipo_vale, ''), pago, COALESCE(tipo_pagamento, ''),
  created_at, updated_at
`

func (s *Store) ListByDate(ctx context.Context, workDate time.Time) ([]WorkRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM funcionarios
    WHERE dia_trabalho = $1
    ORDER BY nome
  `, workDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) GetByID(ctx context.Context, id string) (*WorkRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM funcionarios
    WHERE id = $1
  `, id)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListAll(ctx context.Context) ([]WorkRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM funcionarios
    ORDER BY dia_trabalho DESC NULLS LAST, nome
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) Upsert(ctx context.Context, record WorkRecord) (WorkRecord, error) {
	Normalize(&record)
	if strings.TrimSpace(record.EmployeeName) == "" {
		return WorkRecord{}, errors.New("employee name is required")
	}

	var row pgx.Row
	if record.ID == "" {
		row = s.DB.QueryRow(ctx, `
      INSERT INTO funcionarios
        (nome, valor_10_percent, hora_entrada, hora_saida, dia_trabalho,
         observacao, vale, tipo_vale, pago, tipo_pagamento)
      VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9,$10)
      RETURNING `+recordColumns+`
    `, record.EmployeeName, record.SalesShare, record.CheckIn, record.CheckOut,
			record.WorkDate, record.Note, record.Advance, record.AdvanceMethod,
			record.Paid, record.PaymentMethod)
	} else {
		row = s.DB.QueryRow(ctx, `
      UPDATE funcionarios SET
        nome = $2, valor_10_percent = $3, hora_entrada = $4, hora_saida = $5,
        dia_trabalho = $6, observacao = $7, vale = $8, tipo_vale = NULLIF($9,''),
        pago = $10, tipo_pagamento = $11, updated_at = now()
      WHERE id = $1
      RETURNING `+recordColumns+`
    `, record.ID, record.EmployeeName, record.SalesShare, record.CheckIn,
			record.CheckOut, record.WorkDate, record.Note, record.Advance,
			record.AdvanceMethod, record.Paid, record.PaymentMethod)
	}
	return scanRecord(row)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM funcionarios WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) FindByNameAndDate(ctx context.Context, name string, workDate time.Time) (*WorkRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM funcionarios
    WHERE nome = $1 AND dia_trabalho = $2
    LIMIT 1
  `, name, workDate)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) DistinctNames(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT DISTINCT nome FROM funcionarios ORDER BY nome")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) GetGeneralNote(ctx context.Context, workDate time.Time) (*GeneralNote, error) {
	var note GeneralNote
	err := s.DB.QueryRow(ctx, `
    SELECT id, dia_trabalho, COALESCE(observacao, ''), created_at, updated_at
    FROM observacoes_gerais
    WHERE dia_trabalho = $1
    LIMIT 1
  `, workDate).Scan(&note.ID, &note.WorkDate, &note.Note, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Store) SaveGeneralNote(ctx context.Context, note GeneralNote) (GeneralNote, error) {
	var saved GeneralNote
	err := s.DB.QueryRow(ctx, `
    INSERT INTO observacoes_gerais (dia_trabalho, observacao)
    VALUES ($1, $2)
    ON CONFLICT (dia_trabalho) DO UPDATE
      SET observacao = EXCLUDED.observacao, updated_at = now()
    RETURNING id, dia_trabalho, COALESCE(observacao, ''), created_at, updated_at
  `, note.WorkDate, note.Note).Scan(&saved.ID, &saved.WorkDate, &saved.Note, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return GeneralNote{}, err
	}
	return saved, nil
}

func (s *Store) RecordDelivery(ctx context.Context, delivery Delivery) (Delivery, error) {
	var saved Delivery
	err := s.DB.QueryRow(ctx, `
    INSERT INTO registros_trabalho
      (dia_trabalho, dia_semana, total_funcionarios, total_valores)
    VALUES ($1, $2, $3, $4)
    RETURNING id, dia_trabalho, dia_semana, total_funcionarios, total_valores, data_envio
  `, delivery.WorkDate, delivery.WeekdayLabel, delivery.EmployeeCount, delivery.Total).
		Scan(&saved.ID, &saved.WorkDate, &saved.WeekdayLabel, &saved.EmployeeCount, &saved.Total, &saved.SentAt)
	if err != nil {
		return Delivery{}, err
	}
	return saved, nil
}

func (s *Store) ListDeliveries(ctx context.Context) ([]Delivery, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, dia_trabalho, dia_semana, total_funcionarios, total_valores, data_envio
    FROM registros_trabalho
    ORDER BY dia_trabalho DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []Delivery
	for rows.Next() {
		var d Delivery
		if err := rows.Scan(&d.ID, &d.WorkDate, &d.WeekdayLabel, &d.EmployeeCount, &d.Total, &d.SentAt); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func scanRecords(rows pgx.Rows) ([]WorkRecord, error) {
	var result []WorkRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func scanRecord(row pgx.Row) (WorkRecord, error) {
	var record WorkRecord
	err := row.Scan(
		&record.ID, &record.EmployeeName, &record.SalesShare,
		&record.CheckIn, &record.CheckOut,
		&record.WorkDate, &record.Note,
		&record.Advance, &record.AdvanceMethod, &record.Paid, &record.PaymentMethod,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return WorkRecord{}, err
	}
	Normalize(&record)
	return record, nil
}
