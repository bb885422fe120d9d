package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Claves del almacenamiento local. El token va en crudo y el perfil como JSON.
const (
	TokenKey = "mall_token"
	UserKey  = "mall_user"
)

func encodeUser(u entity.UserProfile) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("storage: serializar usuario: %w", err)
	}
	return string(b), nil
}

func decodeUser(raw string) (*entity.UserProfile, error) {
	if raw == "" {
		return nil, nil
	}
	var u entity.UserProfile
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSessionData, UserKey, err)
	}
	return &u, nil
}
