package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mall-client/internal/application/usecase"
	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Profile perfil público de la cuenta.
func (uc *AuthUseCase) Profile(userID int64) (*entity.UserProfile, error) {
	a, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	p := a.Profile()
	return &p, nil
}

// UpdateProfile aplica los campos no vacíos.
func (uc *AuthUseCase) UpdateProfile(userID int64, in entity.ProfileUpdate) (*entity.UserProfile, error) {
	a, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if in.Email != "" {
		a.Email = in.Email
	}
	if in.Phone != "" {
		a.Phone = in.Phone
	}
	if in.Avatar != "" {
		a.Avatar = in.Avatar
	}
	if err := uc.userRepo.Update(a); err != nil {
		return nil, err
	}
	p := a.Profile()
	return &p, nil
}

// ChangePassword verifica la contraseña actual y guarda el nuevo hash.
func (uc *AuthUseCase) ChangePassword(userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return domain.ErrInvalidInput
	}
	a, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return uc.userRepo.Update(a)
}

// ListUsers página de perfiles para el panel de administración.
func (uc *AuthUseCase) ListUsers(page, size int) (*entity.Page[entity.UserProfile], error) {
	page, size = usecase.NormalizePage(page, size)
	accounts, total, err := uc.userRepo.List(size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	out := &entity.Page[entity.UserProfile]{List: make([]entity.UserProfile, 0, len(accounts)), Total: total, Page: page, Size: size}
	for _, a := range accounts {
		out.List = append(out.List, a.Profile())
	}
	out.Pages = int((total + int64(size) - 1) / int64(size))
	return out, nil
}

// SetStatus habilita (1) o deshabilita (0) una cuenta.
func (uc *AuthUseCase) SetStatus(userID int64, status int) error {
	if status != 0 && status != 1 {
		return domain.ErrInvalidInput
	}
	a, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	a.Status = status
	return uc.userRepo.Update(a)
}

// SetRole cambia el rol de una cuenta.
func (uc *AuthUseCase) SetRole(userID int64, role entity.Role) error {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return domain.ErrInvalidInput
	}
	a, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	a.Role = role
	return uc.userRepo.Update(a)
}
