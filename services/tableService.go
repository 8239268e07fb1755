package services

import (
	"errors"

	"gorm.io/gorm"

	"barflow-api/models"
)

var (
	ErrManualOccupy  = errors.New("OCCUPIED is set by order placement, not manually")
	ErrTableOccupied = errors.New("table has an open order")
	ErrBadTableState = errors.New("unknown table status")
)

// TableService handles the manual side of the table state machine:
// FREE ↔ RESERVED toggles with an optional note. OCCUPIED belongs to the
// order ledger and cannot be entered or left by hand.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

func (s *TableService) SetStatus(tableID uint, status, note string) (*models.Table, error) {
	switch status {
	case models.TableFree, models.TableReserved:
	case models.TableOccupied:
		return nil, ErrManualOccupy
	default:
		return nil, ErrBadTableState
	}

	var table models.Table
	if err := s.db.First(&table, tableID).Error; err != nil {
		return nil, err
	}
	if table.Status == models.TableOccupied {
		return nil, ErrTableOccupied
	}

	updates := map[string]interface{}{
		"status":           status,
		"reservation_note": note,
	}
	if err := s.db.Model(&table).Updates(updates).Error; err != nil {
		return nil, err
	}
	table.Status = status
	table.ReservationNote = &note
	return &table, nil
}
