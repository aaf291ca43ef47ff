package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func auditMetadata(metadata map[string]any) (datatypes.JSON, error) {
	if metadata == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(bytes), nil
}
