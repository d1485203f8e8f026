package service

import (
	"context"
	"fmt"
	"strings"

	"kas-taruna/internal/model"

	"gorm.io/gorm"
)

type MemberService struct{ db *gorm.DB }

func NewMemberService(db *gorm.DB) *MemberService { return &MemberService{db: db} }

// ListActive returns the roster ordered by name, the same order the
// payment grid and the wheel use.
func (s *MemberService) ListActive(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	return members, nil
}

func (s *MemberService) Add(ctx context.Context, role, name string) (*model.Member, error) {
	if role != model.RoleBendahara {
		return nil, ErrForbidden
	}
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, invalid("nama anggota wajib diisi")
	}
	m := model.Member{Name: name, IsActive: true}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

func (s *MemberService) Delete(ctx context.Context, role, id string) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}
	if err := s.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
