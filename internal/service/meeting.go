package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"kas-taruna/internal/model"
	"kas-taruna/internal/wheel"

	"gorm.io/gorm"
)

// MeetingService manages the recurring-meeting records and the wheel
// draw that picks the next host. Meeting cash figures feed report
// totals only; they never touch the Organization balances.
type MeetingService struct {
	db      *gorm.DB
	members *MemberService

	// rand.Rand is not safe for concurrent use and gin serves requests
	// on concurrent goroutines, so every draw takes the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMeetingService(db *gorm.DB, members *MemberService) *MeetingService {
	return &MeetingService{
		db:      db,
		members: members,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *MeetingService) List(ctx context.Context) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := s.db.WithContext(ctx).Order("date DESC").Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("query meetings: %w", err)
	}
	return meetings, nil
}

func (s *MeetingService) Add(ctx context.Context, role string, req model.AddMeetingRequest) (*model.Meeting, error) {
	if role != model.RoleBendahara {
		return nil, ErrForbidden
	}
	if req.Topic == "" {
		return nil, invalid("topik acara wajib diisi")
	}
	if req.TotalCashCollected < 0 {
		return nil, invalid("kas terkumpul tidak boleh negatif")
	}

	m := model.Meeting{
		Date:               req.Date,
		Topic:              req.Topic,
		Location:           req.Location,
		TotalCashCollected: req.TotalCashCollected,
		Notes:              req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}
	return &m, nil
}

func (s *MeetingService) Delete(ctx context.Context, role, id string) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}
	if err := s.db.WithContext(ctx).Delete(&model.Meeting{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}

func findMember(members []model.Member, id string) (*model.Member, error) {
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *MeetingService) draw() (spins, extraAngle int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wheel.Draw(s.rng)
}

// Spin draws a wheel rotation over the active roster and resolves the
// winner. The caller keeps previousRotation between consecutive spins
// and passes zero after a discarded result.
func (s *MeetingService) Spin(ctx context.Context, previousRotation float64) (*model.SpinResponse, error) {
	members, err := s.members.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, wheel.ErrNoMembers
	}

	spins, extra := s.draw()
	total := wheel.TotalRotation(previousRotation, spins, extra)
	idx, err := wheel.WinnerIndex(len(members), total)
	if err != nil {
		return nil, err
	}

	return &model.SpinResponse{
		Spins:         spins,
		ExtraAngle:    extra,
		TotalRotation: total,
		WinnerIndex:   idx,
		Winner:        members[idx],
	}, nil
}

// CommitSpin records the confirmed draw as a meeting one calendar month
// ahead, hosted at the winner's place. The winner is resolved against
// the active roster, the same list the wheel spins over, so a stale id
// for a deleted or deactivated member is rejected.
func (s *MeetingService) CommitSpin(ctx context.Context, role, winnerID string) (*model.Meeting, error) {
	if role != model.RoleBendahara {
		return nil, ErrForbidden
	}
	members, err := s.members.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	winner, err := findMember(members, winnerID)
	if err != nil {
		return nil, err
	}

	m := model.Meeting{
		Date:     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		Topic:    "Kumpulan Rutin Bulanan",
		Location: "Rumah " + winner.Name,
		Notes:    "Tuan rumah dipilih melalui undian putar roda",
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}
	return &m, nil
}
