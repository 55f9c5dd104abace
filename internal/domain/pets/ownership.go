package pets

import "context"

// OwnerOf expone el ownerID de una mascota.
// Se usa para validar pet_id desde el módulo tasks sin ciclos de imports.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}
