package converter

import (
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		Document:    record.Document,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func MedicalRecordsToListResponse(records []entity.MedicalRecord) *dto.MedicalRecordListResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return &dto.MedicalRecordListResponse{
		MedicalRecords: responses,
		Total:          len(responses),
	}
}
