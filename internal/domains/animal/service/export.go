package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"shelter-backend/internal/domains/animal"
)

const exportSheet = "Animals"

var exportHeaders = []string{
	"ID", "Code", "Name", "Breed", "Arrival Date", "Gender", "Age",
	"Vaccinated", "Castrated", "Wormed", "Electronic Chip", "Illness",
	"Notes", "Available", "Adopted", "Image URL",
}

func (s *animalService) Export(ctx context.Context, w io.Writer) error {
	animals, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list animals: %w", err)
	}

	f, err := buildAnimalsWorkbook(toDTOs(animals))
	if err != nil {
		return fmt.Errorf("failed to build excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close excel file")
		}
	}()

	return f.Write(w)
}

func buildAnimalsWorkbook(animals []animal.AnimalDTO) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	// header in đậm
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", lastCell, headerStyle)
	}

	// data từ row 2
	for i, a := range animals {
		row := []interface{}{
			a.ID, a.Code, a.Name, a.Breed, a.ArrivalDate, string(a.Gender), a.Age,
			a.Vaccinated, a.Castrated, a.Wormed, a.ElectronicChip, a.Illness,
			a.Notes, a.IsAvailable, a.HasBeenAdopted, a.ImageURL,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
